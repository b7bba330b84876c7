package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
)

type ContactRepository interface {
	Insert(ctx context.Context, submission *db_models.ContactSubmission) (uuid.UUID, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	SetResponse(ctx context.Context, id uuid.UUID, response string) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.ContactSubmission, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.ContactSubmission, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Insert(ctx context.Context, submission *db_models.ContactSubmission) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return uuid.Nil, err
	}
	return submission.ID, nil
}

func (r *contactRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.ContactSubmission{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contactRepository) SetResponse(ctx context.Context, id uuid.UUID, response string) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.ContactSubmission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"response": response, "is_read": true})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.ContactSubmission{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *contactRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.ContactSubmission, error) {
	var submission db_models.ContactSubmission
	err := r.db.WithContext(ctx).First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *contactRepository) List(ctx context.Context, page, pageSize int) ([]db_models.ContactSubmission, error) {
	var submissions []db_models.ContactSubmission
	err := r.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}
