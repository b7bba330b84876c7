package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

type SeoController struct {
	seoService services.SeoServiceInterface
}

func NewSeoController(seoService services.SeoServiceInterface) *SeoController {
	return &SeoController{seoService: seoService}
}

// Optimize godoc
// @Summary Generate SEO metadata and content suggestions for a draft
// @Tags seo
// @Accept json
// @Produce json
// @Param request body request_models.OptimizeSeoRequest true "Draft title and content"
// @Success 200 {object} utils.APIResponse
// @Router /api/seo-optimize [post]
func (s *SeoController) Optimize(c *gin.Context) {
	var req request_models.OptimizeSeoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := s.seoService.Optimize(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Content analyzed successfully")
}
