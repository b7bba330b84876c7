package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

const settingsCacheEntity = "settings"

type SettingsServiceInterface interface {
	Get(ctx context.Context) (*db_models.SiteSettings, error)
	Update(ctx context.Context, req request_models.UpdateSettingsRequest) error
}

// SettingsService is the single source of truth for site configuration:
// consumers receive the cached value instead of re-fetching the row
// independently.
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
	cache        *memcache.CatalogCache
}

func NewSettingsService(settingsRepo repositories.SettingsRepository, cache *memcache.CatalogCache) SettingsServiceInterface {
	return &SettingsService{
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

func (s *SettingsService) Get(ctx context.Context) (*db_models.SiteSettings, error) {
	if cached, ok := s.cache.Get(settingsCacheEntity, "singleton"); ok {
		return cached.(*db_models.SiteSettings), nil
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		logrus.WithError(err).Error("loading site settings")
		return nil, utils.ErrDatabaseError
	}
	if settings == nil {
		settings = &db_models.SiteSettings{}
	}

	s.cache.Set(settingsCacheEntity, "singleton", settings)
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, req request_models.UpdateSettingsRequest) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if settings == nil {
		settings = &db_models.SiteSettings{}
	}

	settings.SiteName = req.SiteName
	settings.Tagline = req.Tagline
	settings.ContactEmail = req.ContactEmail
	settings.ContactPhone = req.ContactPhone
	settings.Address = req.Address
	settings.FacebookURL = req.FacebookURL
	settings.InstagramURL = req.InstagramURL
	settings.YoutubeURL = req.YoutubeURL
	settings.DefaultMetaTitle = req.DefaultMetaTitle
	settings.DefaultMetaDescription = req.DefaultMetaDescription
	settings.GoogleAnalyticsID = req.GoogleAnalyticsID
	settings.FacebookPixelID = req.FacebookPixelID

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		logrus.WithError(err).Error("saving site settings")
		return utils.ErrDatabaseError
	}

	s.cache.Invalidate(settingsCacheEntity)
	return nil
}
