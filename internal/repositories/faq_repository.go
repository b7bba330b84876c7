package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
)

type FAQRepository interface {
	Insert(ctx context.Context, faq *db_models.FAQ) (uuid.UUID, error)
	Update(ctx context.Context, faq *db_models.FAQ) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.FAQ, error)
	ListActive(ctx context.Context) ([]db_models.FAQ, error)
	ListAll(ctx context.Context) ([]db_models.FAQ, error)
}

type faqRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) Insert(ctx context.Context, faq *db_models.FAQ) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(faq).Error; err != nil {
		return uuid.Nil, err
	}
	return faq.ID, nil
}

func (r *faqRepository) Update(ctx context.Context, faq *db_models.FAQ) error {
	result := r.db.WithContext(ctx).Save(faq)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *faqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.FAQ{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *faqRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.FAQ, error) {
	var faq db_models.FAQ
	err := r.db.WithContext(ctx).First(&faq, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepository) ListActive(ctx context.Context) ([]db_models.FAQ, error) {
	var faqs []db_models.FAQ
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category ASC, display_order ASC").
		Find(&faqs).Error
	return faqs, err
}

func (r *faqRepository) ListAll(ctx context.Context) ([]db_models.FAQ, error) {
	var faqs []db_models.FAQ
	err := r.db.WithContext(ctx).
		Order("category ASC, display_order ASC").
		Find(&faqs).Error
	return faqs, err
}
