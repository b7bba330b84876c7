package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
)

type TrekEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding db_models.TrekEmbedding) error
	Delete(ctx context.Context, trekID string) error
	NearestByVector(ctx context.Context, vector pgvector.Vector, excludeTrekID string, limit int) ([]db_models.TrekEmbedding, error)
}

type trekEmbeddingRepository struct {
	db *gorm.DB
}

func NewTrekEmbeddingRepository(db *gorm.DB) TrekEmbeddingRepository {
	return &trekEmbeddingRepository{db: db}
}

func (r *trekEmbeddingRepository) Upsert(ctx context.Context, embedding db_models.TrekEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trek_id"}},
			UpdateAll: true,
		}).
		Create(&embedding).Error
}

func (r *trekEmbeddingRepository) Delete(ctx context.Context, trekID string) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.TrekEmbedding{}, "trek_id = ?", trekID).Error
}

func (r *trekEmbeddingRepository) NearestByVector(ctx context.Context, vector pgvector.Vector, excludeTrekID string, limit int) ([]db_models.TrekEmbedding, error) {
	var results []db_models.TrekEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM trek_embeddings
        WHERE trek_id <> $2
        ORDER BY embedding <=> $1
        LIMIT $3
    `

	err := r.db.WithContext(ctx).Raw(query, vector.String(), excludeTrekID, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
