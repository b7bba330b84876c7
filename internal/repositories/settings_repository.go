package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*db_models.SiteSettings, error)
	Save(ctx context.Context, settings *db_models.SiteSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the singleton settings row, nil when none has been saved yet.
func (r *settingsRepository) Get(ctx context.Context) (*db_models.SiteSettings, error) {
	var settings db_models.SiteSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *db_models.SiteSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
