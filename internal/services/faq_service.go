package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/response_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/memcache"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

const faqCacheEntity = "faqs"

type FAQServiceInterface interface {
	ListGrouped(ctx context.Context) ([]response_models.FAQGroup, error)
	ListAll(ctx context.Context) ([]db_models.FAQ, error)
	CreateFAQ(ctx context.Context, req request_models.CreateFAQRequest) (uuid.UUID, error)
	UpdateFAQ(ctx context.Context, req request_models.UpdateFAQRequest) error
	DeleteFAQ(ctx context.Context, id uuid.UUID) error
}

type FAQService struct {
	faqRepo repositories.FAQRepository
	cache   *memcache.CatalogCache
}

func NewFAQService(faqRepo repositories.FAQRepository, cache *memcache.CatalogCache) FAQServiceInterface {
	return &FAQService{faqRepo: faqRepo, cache: cache}
}

// ListGrouped is the public FAQ page: active entries bucketed by
// category, ordered by display_order within each bucket.
func (f *FAQService) ListGrouped(ctx context.Context) ([]response_models.FAQGroup, error) {
	var faqs []db_models.FAQ

	if cached, ok := f.cache.Get(faqCacheEntity, "active"); ok {
		faqs = cached.([]db_models.FAQ)
	} else {
		var err error
		faqs, err = f.faqRepo.ListActive(ctx)
		if err != nil {
			logrus.WithError(err).Error("listing FAQs")
			return nil, utils.ErrDatabaseError
		}
		f.cache.Set(faqCacheEntity, "active", faqs)
	}

	groups := make([]response_models.FAQGroup, 0)
	for _, g := range GroupFAQs(faqs) {
		group := response_models.FAQGroup{Category: g.Category}
		for _, faq := range g.Items {
			group.Items = append(group.Items, response_models.FAQItem{
				ID:           faq.ID.String(),
				Question:     faq.Question,
				Answer:       faq.Answer,
				DisplayOrder: faq.DisplayOrder,
			})
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (f *FAQService) ListAll(ctx context.Context) ([]db_models.FAQ, error) {
	faqs, err := f.faqRepo.ListAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("listing all FAQs")
		return nil, utils.ErrDatabaseError
	}
	return faqs, nil
}

func (f *FAQService) CreateFAQ(ctx context.Context, req request_models.CreateFAQRequest) (uuid.UUID, error) {
	faq := faqFromRequest(req)

	id, err := f.faqRepo.Insert(ctx, faq)
	if err != nil {
		logrus.WithError(err).Error("creating FAQ")
		return uuid.Nil, utils.ErrDatabaseError
	}

	f.cache.Invalidate(faqCacheEntity)
	return id, nil
}

func (f *FAQService) UpdateFAQ(ctx context.Context, req request_models.UpdateFAQRequest) error {
	existing, err := f.faqRepo.GetByID(ctx, req.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrFAQNotFound
	}

	updated := faqFromRequest(req.CreateFAQRequest)
	updated.ID = req.ID
	updated.CreatedAt = existing.CreatedAt

	if err := f.faqRepo.Update(ctx, updated); err != nil {
		logrus.WithError(err).Error("updating FAQ")
		return utils.ErrDatabaseError
	}

	f.cache.Invalidate(faqCacheEntity)
	return nil
}

func (f *FAQService) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	existing, err := f.faqRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrFAQNotFound
	}

	if err := f.faqRepo.Delete(ctx, id); err != nil {
		logrus.WithError(err).Error("deleting FAQ")
		return utils.ErrDatabaseError
	}

	f.cache.Invalidate(faqCacheEntity)
	return nil
}

func faqFromRequest(req request_models.CreateFAQRequest) *db_models.FAQ {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &db_models.FAQ{
		Category:     req.Category,
		Question:     req.Question,
		Answer:       req.Answer,
		DisplayOrder: req.DisplayOrder,
		IsActive:     active,
	}
}
