package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/response_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/seo"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

const trekCacheEntity = "treks"

type TrekServiceInterface interface {
	ListPublished(ctx context.Context, filter TrekFilter) ([]response_models.TrekSummary, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*response_models.TrekDetail, error)

	CreateTrek(ctx context.Context, req request_models.CreateTrekRequest) (uuid.UUID, error)
	UpdateTrek(ctx context.Context, req request_models.UpdateTrekRequest) error
	DeleteTrek(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context, page, pageSize int) ([]db_models.Trek, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Trek, error)
}

type TrekService struct {
	trekRepo    repositories.TrekRepository
	cache       *memcache.CatalogCache
	recommender TrekRecommender
}

func NewTrekService(
	trekRepo repositories.TrekRepository,
	cache *memcache.CatalogCache,
	recommender TrekRecommender,
) TrekServiceInterface {
	return &TrekService{
		trekRepo:    trekRepo,
		cache:       cache,
		recommender: recommender,
	}
}

// ListPublished serves the catalog page. The published list is fetched
// once per cache window and shared; filtering and sorting happen in
// memory over that snapshot.
func (t *TrekService) ListPublished(ctx context.Context, filter TrekFilter) ([]response_models.TrekSummary, error) {
	treks, err := t.publishedSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterTreks(treks, filter)

	summaries := make([]response_models.TrekSummary, 0, len(filtered))
	for _, trek := range filtered {
		summaries = append(summaries, toTrekSummary(&trek))
	}
	return summaries, nil
}

func (t *TrekService) publishedSnapshot(ctx context.Context) ([]db_models.Trek, error) {
	if cached, ok := t.cache.Get(trekCacheEntity, "published"); ok {
		return cached.([]db_models.Trek), nil
	}

	treks, err := t.trekRepo.ListPublished(ctx)
	if err != nil {
		logrus.WithError(err).Error("listing published treks")
		return nil, utils.ErrDatabaseError
	}

	t.cache.Set(trekCacheEntity, "published", treks)
	return treks, nil
}

func (t *TrekService) GetPublishedBySlug(ctx context.Context, slug string) (*response_models.TrekDetail, error) {
	trek, err := t.trekRepo.GetBySlug(ctx, slug)
	if err != nil {
		logrus.WithError(err).Error("fetching trek by slug")
		return nil, utils.ErrDatabaseError
	}
	if trek == nil || !trek.IsPublished {
		return nil, utils.ErrTrekNotFound
	}

	detail := toTrekDetail(trek)

	similar, err := t.recommender.SimilarTreks(ctx, trek, 4)
	if err != nil {
		logrus.WithError(err).Warn("similar treks unavailable")
	}
	for _, s := range similar {
		detail.SimilarTreks = append(detail.SimilarTreks, toTrekSummary(&s))
	}

	return detail, nil
}

func (t *TrekService) CreateTrek(ctx context.Context, req request_models.CreateTrekRequest) (uuid.UUID, error) {
	if req.Difficulty != "" && !db_models.ValidDifficulty(req.Difficulty) {
		return uuid.Nil, fmt.Errorf("%w: unknown difficulty %q", utils.ErrInvalidTrek, req.Difficulty)
	}

	slug := req.Slug
	if slug == "" {
		slug = seo.GenerateSlug(req.Name)
	}

	taken, err := t.trekRepo.SlugExists(ctx, slug, uuid.Nil)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if taken {
		return uuid.Nil, utils.ErrSlugTaken
	}

	trek := trekFromRequest(req)
	trek.Slug = slug

	id, err := t.trekRepo.Insert(ctx, trek)
	if err != nil {
		logrus.WithError(err).Error("creating trek")
		return uuid.Nil, utils.ErrDatabaseError
	}

	t.cache.Invalidate(trekCacheEntity)
	if err := t.recommender.Reindex(ctx, trek); err != nil {
		logrus.WithError(err).WithField("trek_id", id).Warn("trek index update failed")
	}

	return id, nil
}

func (t *TrekService) UpdateTrek(ctx context.Context, req request_models.UpdateTrekRequest) error {
	if req.Difficulty != "" && !db_models.ValidDifficulty(req.Difficulty) {
		return fmt.Errorf("%w: unknown difficulty %q", utils.ErrInvalidTrek, req.Difficulty)
	}

	existing, err := t.trekRepo.GetByID(ctx, req.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrTrekNotFound
	}

	slug := req.Slug
	if slug == "" {
		slug = existing.Slug
	}
	taken, err := t.trekRepo.SlugExists(ctx, slug, req.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if taken {
		return utils.ErrSlugTaken
	}

	updated := trekFromRequest(req.CreateTrekRequest)
	updated.ID = req.ID
	updated.Slug = slug
	updated.Rating = existing.Rating
	updated.ReviewCount = existing.ReviewCount
	updated.CreatedAt = existing.CreatedAt

	if err := t.trekRepo.Update(ctx, updated); err != nil {
		logrus.WithError(err).Error("updating trek")
		return utils.ErrDatabaseError
	}

	t.cache.Invalidate(trekCacheEntity)
	if err := t.recommender.Reindex(ctx, updated); err != nil {
		logrus.WithError(err).WithField("trek_id", req.ID).Warn("trek index update failed")
	}

	return nil
}

func (t *TrekService) DeleteTrek(ctx context.Context, id uuid.UUID) error {
	existing, err := t.trekRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrTrekNotFound
	}

	if err := t.trekRepo.Delete(ctx, id); err != nil {
		logrus.WithError(err).Error("deleting trek")
		return utils.ErrDatabaseError
	}

	t.cache.Invalidate(trekCacheEntity)
	if err := t.recommender.Remove(ctx, id.String()); err != nil {
		logrus.WithError(err).WithField("trek_id", id).Warn("trek index removal failed")
	}

	return nil
}

func (t *TrekService) ListAll(ctx context.Context, page, pageSize int) ([]db_models.Trek, error) {
	treks, err := t.trekRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		logrus.WithError(err).Error("listing treks")
		return nil, utils.ErrDatabaseError
	}
	return treks, nil
}

func (t *TrekService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Trek, error) {
	trek, err := t.trekRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trek == nil {
		return nil, utils.ErrTrekNotFound
	}
	return trek, nil
}

func trekFromRequest(req request_models.CreateTrekRequest) *db_models.Trek {
	trek := &db_models.Trek{
		Name:            req.Name,
		Region:          req.Region,
		Description:     req.Description,
		Difficulty:      req.Difficulty,
		DurationDays:    req.DurationDays,
		MaxAltitude:     req.MaxAltitude,
		Price:           req.Price,
		Highlights:      req.Highlights,
		Includes:        req.Includes,
		Excludes:        req.Excludes,
		Gallery:         req.Gallery,
		IsPublished:     req.IsPublished,
		IsFeatured:      req.IsFeatured,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
	}

	for _, day := range req.Itinerary {
		trek.Itinerary = append(trek.Itinerary, db_models.TrekItinerary{
			DayNumber:   day.DayNumber,
			Title:       day.Title,
			Description: day.Description,
			Altitude:    day.Altitude,
			DistanceKm:  day.DistanceKm,
		})
	}
	return trek
}

func toTrekSummary(trek *db_models.Trek) response_models.TrekSummary {
	cover := ""
	if len(trek.Gallery) > 0 {
		cover = trek.Gallery[0]
	}
	return response_models.TrekSummary{
		ID:           trek.ID.String(),
		Name:         trek.Name,
		Slug:         trek.Slug,
		Region:       trek.Region,
		Difficulty:   trek.Difficulty,
		DurationDays: trek.DurationDays,
		MaxAltitude:  trek.MaxAltitude,
		Price:        trek.Price,
		Rating:       trek.Rating,
		ReviewCount:  trek.ReviewCount,
		IsFeatured:   trek.IsFeatured,
		CoverImage:   cover,
	}
}

func toTrekDetail(trek *db_models.Trek) *response_models.TrekDetail {
	detail := &response_models.TrekDetail{
		TrekSummary:     toTrekSummary(trek),
		Description:     trek.Description,
		Highlights:      trek.Highlights,
		Includes:        trek.Includes,
		Excludes:        trek.Excludes,
		Gallery:         trek.Gallery,
		MetaTitle:       trek.MetaTitle,
		MetaDescription: trek.MetaDescription,
	}
	for _, day := range trek.Itinerary {
		detail.Itinerary = append(detail.Itinerary, response_models.ItineraryDay{
			DayNumber:   day.DayNumber,
			Title:       day.Title,
			Description: day.Description,
			Altitude:    day.Altitude,
			DistanceKm:  day.DistanceKm,
		})
	}
	return detail
}
