package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
)

type BlogRepository interface {
	Insert(ctx context.Context, post *db_models.BlogPost) (uuid.UUID, error)
	Update(ctx context.Context, post *db_models.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.BlogPost, error)
	ListPublished(ctx context.Context) ([]db_models.BlogPost, error)
	ListAll(ctx context.Context, page, pageSize int) ([]db_models.BlogPost, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Insert(ctx context.Context, post *db_models.BlogPost) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return uuid.Nil, err
	}
	return post.ID, nil
}

func (r *blogRepository) Update(ctx context.Context, post *db_models.BlogPost) error {
	result := r.db.WithContext(ctx).Save(post)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.BlogPost{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.BlogPost, error) {
	var post db_models.BlogPost
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*db_models.BlogPost, error) {
	var post db_models.BlogPost
	err := r.db.WithContext(ctx).First(&post, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) ListPublished(ctx context.Context) ([]db_models.BlogPost, error) {
	var posts []db_models.BlogPost
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *blogRepository) ListAll(ctx context.Context, page, pageSize int) ([]db_models.BlogPost, error) {
	var posts []db_models.BlogPost
	err := r.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *blogRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *blogRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&db_models.BlogPost{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
