package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
)

type TeamRepository interface {
	Insert(ctx context.Context, member *db_models.TeamMember) (uuid.UUID, error)
	Update(ctx context.Context, member *db_models.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.TeamMember, error)
	ListActive(ctx context.Context) ([]db_models.TeamMember, error)
	ListAll(ctx context.Context) ([]db_models.TeamMember, error)
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Insert(ctx context.Context, member *db_models.TeamMember) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return uuid.Nil, err
	}
	return member.ID, nil
}

func (r *teamRepository) Update(ctx context.Context, member *db_models.TeamMember) error {
	result := r.db.WithContext(ctx).Save(member)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.TeamMember{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.TeamMember, error) {
	var member db_models.TeamMember
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) ListActive(ctx context.Context) ([]db_models.TeamMember, error) {
	var members []db_models.TeamMember
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&members).Error
	return members, err
}

func (r *teamRepository) ListAll(ctx context.Context) ([]db_models.TeamMember, error) {
	var members []db_models.TeamMember
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Find(&members).Error
	return members, err
}
