package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}
