package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/response_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

const mediaCacheEntity = "media"

// MediaUploader pushes a binary to the object store and returns its
// public URL. Implemented against Cloudinary in internal/infra.
type MediaUploader interface {
	UploadBase64(ctx context.Context, base64Data, publicID string) (url string, sizeBytes int64, err error)
}

type MediaServiceInterface interface {
	Upload(ctx context.Context, req request_models.UploadMediaRequest) (*response_models.MediaItemResponse, error)
	List(ctx context.Context, category string, page, pageSize int) ([]response_models.MediaItemResponse, error)
	UpdateMeta(ctx context.Context, req request_models.UpdateMediaRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MediaService struct {
	mediaRepo repositories.MediaRepository
	uploader  MediaUploader
	cache     *memcache.CatalogCache
}

func NewMediaService(mediaRepo repositories.MediaRepository, uploader MediaUploader, cache *memcache.CatalogCache) MediaServiceInterface {
	return &MediaService{
		mediaRepo: mediaRepo,
		uploader:  uploader,
		cache:     cache,
	}
}

// Upload sends the binary to the object store before creating the
// library row; a failed upload leaves no row behind.
func (m *MediaService) Upload(ctx context.Context, req request_models.UploadMediaRequest) (*response_models.MediaItemResponse, error) {
	publicID := uuid.New().String()

	url, size, err := m.uploader.UploadBase64(ctx, req.Base64Data, publicID)
	if err != nil {
		logrus.WithError(err).Error("uploading media")
		return nil, utils.ErrUploadFailed
	}

	item := &db_models.MediaItem{
		FileName:  req.FileName,
		URL:       url,
		MimeType:  req.MimeType,
		SizeBytes: size,
		Category:  req.Category,
		AltText:   req.AltText,
	}
	if len(req.Tags) > 0 {
		if tags, err := json.Marshal(req.Tags); err == nil {
			item.Tags = tags
		}
	}

	if _, err := m.mediaRepo.Insert(ctx, item); err != nil {
		logrus.WithError(err).Error("saving media item")
		return nil, utils.ErrDatabaseError
	}

	m.cache.Invalidate(mediaCacheEntity)
	resp := toMediaResponse(item)
	return &resp, nil
}

// List serves both the admin library and the public gallery from one
// cached snapshot; category filtering and pagination happen in memory
// over that snapshot.
func (m *MediaService) List(ctx context.Context, category string, page, pageSize int) ([]response_models.MediaItemResponse, error) {
	items, err := m.librarySnapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterMediaByCategory(items, category)
	filtered = paginateMedia(filtered, page, pageSize)

	responses := make([]response_models.MediaItemResponse, 0, len(filtered))
	for i := range filtered {
		responses = append(responses, toMediaResponse(&filtered[i]))
	}
	return responses, nil
}

func (m *MediaService) librarySnapshot(ctx context.Context) ([]db_models.MediaItem, error) {
	if cached, ok := m.cache.Get(mediaCacheEntity, "all"); ok {
		return cached.([]db_models.MediaItem), nil
	}

	items, err := m.mediaRepo.ListAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("listing media")
		return nil, utils.ErrDatabaseError
	}

	m.cache.Set(mediaCacheEntity, "all", items)
	return items, nil
}

func paginateMedia(items []db_models.MediaItem, page, pageSize int) []db_models.MediaItem {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func (m *MediaService) UpdateMeta(ctx context.Context, req request_models.UpdateMediaRequest) error {
	existing, err := m.mediaRepo.GetByID(ctx, req.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrMediaNotFound
	}

	existing.Category = req.Category
	existing.AltText = req.AltText
	if req.Tags != nil {
		if tags, err := json.Marshal(req.Tags); err == nil {
			existing.Tags = tags
		}
	}

	if err := m.mediaRepo.Update(ctx, existing); err != nil {
		logrus.WithError(err).Error("updating media item")
		return utils.ErrDatabaseError
	}

	m.cache.Invalidate(mediaCacheEntity)
	return nil
}

func (m *MediaService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := m.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrMediaNotFound
	}

	if err := m.mediaRepo.Delete(ctx, id); err != nil {
		logrus.WithError(err).Error("deleting media item")
		return utils.ErrDatabaseError
	}

	m.cache.Invalidate(mediaCacheEntity)
	return nil
}

func toMediaResponse(item *db_models.MediaItem) response_models.MediaItemResponse {
	var tags []string
	if len(item.Tags) > 0 {
		_ = json.Unmarshal(item.Tags, &tags)
	}
	return response_models.MediaItemResponse{
		ID:        item.ID.String(),
		FileName:  item.FileName,
		URL:       item.URL,
		MimeType:  item.MimeType,
		SizeBytes: item.SizeBytes,
		Width:     item.Width,
		Height:    item.Height,
		Category:  item.Category,
		Tags:      tags,
		AltText:   item.AltText,
		CreatedAt: item.CreatedAt,
	}
}
