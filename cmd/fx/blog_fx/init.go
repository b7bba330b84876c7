package blog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
	mem "github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
)

var Module = fx.Provide(
	provideBlogService, provideBlogRepo)

func provideBlogRepo(db *gorm.DB) repositories.BlogRepository {
	return repositories.NewBlogRepository(db)
}

func provideBlogService(blogRepo repositories.BlogRepository, cache *mem.CatalogCache) services.BlogServiceInterface {
	return services.NewBlogService(blogRepo, cache)
}
