package media_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/infra"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
	mem "github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
)

var Module = fx.Provide(
	provideMediaService, provideMediaRepo, provideUploader)

func provideMediaRepo(db *gorm.DB) repositories.MediaRepository {
	return repositories.NewMediaRepository(db)
}

func provideUploader() services.MediaUploader {
	return infra.NewCloudinaryUploader()
}

func provideMediaService(mediaRepo repositories.MediaRepository, uploader services.MediaUploader, cache *mem.CatalogCache) services.MediaServiceInterface {
	return services.NewMediaService(mediaRepo, uploader, cache)
}
