package infra

import (
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("connecting to database")
	}

	if err := db.AutoMigrate(
		&db_models.Trek{},
		&db_models.TrekItinerary{},
		&db_models.Booking{},
		&db_models.BlogPost{},
		&db_models.ContactSubmission{},
		&db_models.FAQ{},
		&db_models.TeamMember{},
		&db_models.MediaItem{},
		&db_models.SiteSettings{},
		&db_models.Account{},
	); err != nil {
		logrus.WithError(err).Fatal("running migrations")
	}

	// trek_embeddings needs the pgvector extension; skip the table when
	// the extension is absent so the app still serves without it.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		logrus.WithError(err).Warn("pgvector unavailable, similar treks disabled")
	} else if err := db.AutoMigrate(&db_models.TrekEmbedding{}); err != nil {
		logrus.WithError(err).Warn("migrating trek_embeddings failed")
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("closing database connection")
	}
}
