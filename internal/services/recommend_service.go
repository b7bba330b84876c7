package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
)

// EmbeddingProvider turns text into a vector. Implemented against OpenAI
// in pkg/utils; swapped for a fake in tests.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) (pgvector.Vector, error)
}

// TrekRecommender maintains the similarity index and serves "similar
// treks" lookups. All methods are best-effort from the caller's view:
// trek CRUD must not fail because the index is unavailable.
type TrekRecommender interface {
	SimilarTreks(ctx context.Context, trek *db_models.Trek, limit int) ([]db_models.Trek, error)
	Reindex(ctx context.Context, trek *db_models.Trek) error
	Remove(ctx context.Context, trekID string) error
}

type RecommendService struct {
	embeddingRepo repositories.TrekEmbeddingRepository
	trekRepo      repositories.TrekRepository
	embedder      EmbeddingProvider
}

func NewRecommendService(
	embeddingRepo repositories.TrekEmbeddingRepository,
	trekRepo repositories.TrekRepository,
	embedder EmbeddingProvider,
) TrekRecommender {
	return &RecommendService{
		embeddingRepo: embeddingRepo,
		trekRepo:      trekRepo,
		embedder:      embedder,
	}
}

func embeddingText(trek *db_models.Trek) string {
	parts := []string{trek.Name, trek.Region, trek.Difficulty}
	parts = append(parts, trek.Highlights...)
	return strings.Join(parts, ". ")
}

func (r *RecommendService) Reindex(ctx context.Context, trek *db_models.Trek) error {
	vector, err := r.embedder.Embed(ctx, embeddingText(trek))
	if err != nil {
		return err
	}

	return r.embeddingRepo.Upsert(ctx, db_models.TrekEmbedding{
		TrekID:     trek.ID.String(),
		Name:       trek.Name,
		Region:     trek.Region,
		Difficulty: trek.Difficulty,
		Highlights: trek.Highlights,
		Embedding:  vector,
	})
}

func (r *RecommendService) Remove(ctx context.Context, trekID string) error {
	return r.embeddingRepo.Delete(ctx, trekID)
}

func (r *RecommendService) SimilarTreks(ctx context.Context, trek *db_models.Trek, limit int) ([]db_models.Trek, error) {
	vector, err := r.embedder.Embed(ctx, embeddingText(trek))
	if err != nil {
		return nil, err
	}

	neighbors, err := r.embeddingRepo.NearestByVector(ctx, vector, trek.ID.String(), limit)
	if err != nil {
		return nil, err
	}

	treks := make([]db_models.Trek, 0, len(neighbors))
	for _, n := range neighbors {
		id, err := uuid.Parse(n.TrekID)
		if err != nil {
			continue
		}
		full, err := r.trekRepo.GetByID(ctx, id)
		if err != nil || full == nil || !full.IsPublished {
			continue
		}
		treks = append(treks, *full)
	}
	return treks, nil
}

// NoopRecommender is wired in when no embedding provider is configured;
// the catalog then simply omits similar treks.
type NoopRecommender struct{}

func (NoopRecommender) SimilarTreks(ctx context.Context, trek *db_models.Trek, limit int) ([]db_models.Trek, error) {
	return nil, nil
}

func (NoopRecommender) Reindex(ctx context.Context, trek *db_models.Trek) error {
	logrus.Debug("recommender disabled, skipping reindex")
	return nil
}

func (NoopRecommender) Remove(ctx context.Context, trekID string) error {
	return nil
}
