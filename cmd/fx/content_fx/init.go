package content_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
	mem "github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
)

var Module = fx.Provide(
	provideFAQService, provideFAQRepo,
	provideTeamService, provideTeamRepo,
	provideContactService, provideContactRepo)

func provideFAQRepo(db *gorm.DB) repositories.FAQRepository {
	return repositories.NewFAQRepository(db)
}

func provideFAQService(faqRepo repositories.FAQRepository, cache *mem.CatalogCache) services.FAQServiceInterface {
	return services.NewFAQService(faqRepo, cache)
}

func provideTeamRepo(db *gorm.DB) repositories.TeamRepository {
	return repositories.NewTeamRepository(db)
}

func provideTeamService(teamRepo repositories.TeamRepository) services.TeamServiceInterface {
	return services.NewTeamService(teamRepo)
}

func provideContactRepo(db *gorm.DB) repositories.ContactRepository {
	return repositories.NewContactRepository(db)
}

func provideContactService(contactRepo repositories.ContactRepository) services.ContactServiceInterface {
	return services.NewContactService(contactRepo)
}
