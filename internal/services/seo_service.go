package services

import (
	"context"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/seo"
)

type SeoServiceInterface interface {
	Optimize(ctx context.Context, req request_models.OptimizeSeoRequest) (seo.Result, error)
}

type SeoService struct {
	optimizer seo.Optimizer
}

func NewSeoService(optimizer seo.Optimizer) SeoServiceInterface {
	return &SeoService{optimizer: optimizer}
}

func (s *SeoService) Optimize(ctx context.Context, req request_models.OptimizeSeoRequest) (seo.Result, error) {
	contentType := req.ContentType
	if contentType == "" {
		contentType = "blog"
	}

	return s.optimizer.Optimize(ctx, seo.Input{
		Title:       req.Title,
		Content:     req.Content,
		ContentType: contentType,
		Region:      req.Region,
	})
}
