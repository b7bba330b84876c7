package trek_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
	mem "github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

var Module = fx.Provide(
	provideTrekService, provideTrekRepo, provideEmbeddingRepo, provideRecommender)

func provideTrekRepo(db *gorm.DB) repositories.TrekRepository {
	return repositories.NewTrekRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.TrekEmbeddingRepository {
	return repositories.NewTrekEmbeddingRepository(db)
}

func provideRecommender(
	embeddingRepo repositories.TrekEmbeddingRepository,
	trekRepo repositories.TrekRepository,
) services.TrekRecommender {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return services.NoopRecommender{}
	}
	return services.NewRecommendService(embeddingRepo, trekRepo, utils.NewOpenAIEmbedder(apiKey))
}

func provideTrekService(
	trekRepo repositories.TrekRepository,
	cache *mem.CatalogCache,
	recommender services.TrekRecommender,
) services.TrekServiceInterface {
	return services.NewTrekService(trekRepo, cache, recommender)
}
