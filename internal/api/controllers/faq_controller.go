package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

type FAQController struct {
	faqService services.FAQServiceInterface
}

func NewFAQController(faqService services.FAQServiceInterface) *FAQController {
	return &FAQController{faqService: faqService}
}

func (f *FAQController) ListGrouped(c *gin.Context) {
	groups, err := f.faqService.ListGrouped(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, groups, "FAQs fetched successfully")
}

func (f *FAQController) ListAll(c *gin.Context) {
	faqs, err := f.faqService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, faqs, "FAQs fetched successfully")
}

func (f *FAQController) CreateFAQ(c *gin.Context) {
	var req request_models.CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	id, err := f.faqService.CreateFAQ(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": id}, "FAQ created successfully")
}

func (f *FAQController) UpdateFAQ(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid FAQ ID")
		return
	}

	var req request_models.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	req.ID = id

	if err := f.faqService.UpdateFAQ(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "FAQ updated successfully")
}

func (f *FAQController) DeleteFAQ(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid FAQ ID")
		return
	}

	if err := f.faqService.DeleteFAQ(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "FAQ deleted successfully")
}
