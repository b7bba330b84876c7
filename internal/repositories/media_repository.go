package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
)

type MediaRepository interface {
	Insert(ctx context.Context, item *db_models.MediaItem) (uuid.UUID, error)
	Update(ctx context.Context, item *db_models.MediaItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.MediaItem, error)
	ListAll(ctx context.Context) ([]db_models.MediaItem, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Insert(ctx context.Context, item *db_models.MediaItem) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return uuid.Nil, err
	}
	return item.ID, nil
}

func (r *mediaRepository) Update(ctx context.Context, item *db_models.MediaItem) error {
	result := r.db.WithContext(ctx).Save(item)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.MediaItem{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.MediaItem, error) {
	var item db_models.MediaItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *mediaRepository) ListAll(ctx context.Context) ([]db_models.MediaItem, error) {
	var items []db_models.MediaItem
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
