package settings_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
	mem "github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
)

var Module = fx.Provide(
	provideSettingsService, provideSettingsRepo)

func provideSettingsRepo(db *gorm.DB) repositories.SettingsRepository {
	return repositories.NewSettingsRepository(db)
}

func provideSettingsService(settingsRepo repositories.SettingsRepository, cache *mem.CatalogCache) services.SettingsServiceInterface {
	return services.NewSettingsService(settingsRepo, cache)
}
