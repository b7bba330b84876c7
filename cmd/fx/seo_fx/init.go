package seo_fx

import (
	"os"

	"go.uber.org/fx"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/seo"
)

var Module = fx.Provide(
	provideSeoService, provideOptimizer)

// provideOptimizer upgrades to the OpenAI strategy when an API key is
// present; the heuristic analyzer always backs it as the fallback.
func provideOptimizer() seo.Optimizer {
	heuristic := seo.NewHeuristicOptimizer()
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		return seo.NewOpenAIOptimizer(apiKey, heuristic)
	}
	return heuristic
}

func provideSeoService(optimizer seo.Optimizer) services.SeoServiceInterface {
	return services.NewSeoService(optimizer)
}
