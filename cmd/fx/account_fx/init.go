package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}
