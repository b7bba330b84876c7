package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
)

type TrekRepository interface {
	Insert(ctx context.Context, trek *db_models.Trek) (uuid.UUID, error)
	Update(ctx context.Context, trek *db_models.Trek) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Trek, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.Trek, error)
	ListPublished(ctx context.Context) ([]db_models.Trek, error)
	ListAll(ctx context.Context, page, pageSize int) ([]db_models.Trek, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

type trekRepository struct {
	db *gorm.DB
}

func NewTrekRepository(db *gorm.DB) TrekRepository {
	return &trekRepository{db: db}
}

func (r *trekRepository) Insert(ctx context.Context, trek *db_models.Trek) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(trek).Error; err != nil {
		return uuid.Nil, err
	}
	return trek.ID, nil
}

func (r *trekRepository) Update(ctx context.Context, trek *db_models.Trek) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Replace the itinerary wholesale so removed days go away.
		if err := tx.Where("trek_id = ?", trek.ID).Delete(&db_models.TrekItinerary{}).Error; err != nil {
			return fmt.Errorf("failed to clear itinerary: %w", err)
		}

		result := tx.Save(trek)
		if result.Error != nil {
			return fmt.Errorf("failed to update trek: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *trekRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Trek{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Read helpers return a default value and nil error when no row matches.

func (r *trekRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Trek, error) {
	var trek db_models.Trek
	err := r.db.WithContext(ctx).
		Preload("Itinerary", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		First(&trek, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trek, nil
}

func (r *trekRepository) GetBySlug(ctx context.Context, slug string) (*db_models.Trek, error) {
	var trek db_models.Trek
	err := r.db.WithContext(ctx).
		Preload("Itinerary", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		First(&trek, "slug = ?", slug).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trek, nil
}

func (r *trekRepository) ListPublished(ctx context.Context) ([]db_models.Trek, error) {
	var treks []db_models.Trek
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&treks).Error
	if err != nil {
		return nil, err
	}
	return treks, nil
}

func (r *trekRepository) ListAll(ctx context.Context, page, pageSize int) ([]db_models.Trek, error) {
	var treks []db_models.Trek
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&treks).Error
	if err != nil {
		return nil, err
	}
	return treks, nil
}

func (r *trekRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&db_models.Trek{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
