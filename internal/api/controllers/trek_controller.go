package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

type TrekController struct {
	trekService services.TrekServiceInterface
}

func NewTrekController(trekService services.TrekServiceInterface) *TrekController {
	return &TrekController{trekService: trekService}
}

// ListTreks serves the public catalog with query-string filtering:
// ?search=...&difficulty=...&sort=price-low|price-high|rating|popular
func (t *TrekController) ListTreks(c *gin.Context) {
	var params request_models.TrekFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	treks, err := t.trekService.ListPublished(c.Request.Context(), services.TrekFilter{
		Search:     params.Search,
		Difficulty: params.Difficulty,
		Sort:       params.Sort,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, treks, "Treks fetched successfully")
}

func (t *TrekController) GetTrekBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trek slug is required")
		return
	}

	trek, err := t.trekService.GetPublishedBySlug(c.Request.Context(), slug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trek, "Trek fetched successfully")
}

func (t *TrekController) ListAllTreks(c *gin.Context) {
	page, pageSize, ok := parsePageParams(c)
	if !ok {
		return
	}

	treks, err := t.trekService.ListAll(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, treks, "Treks fetched successfully")
}

func (t *TrekController) GetTrekByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trek ID")
		return
	}

	trek, err := t.trekService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trek, "Trek fetched successfully")
}

func (t *TrekController) CreateTrek(c *gin.Context) {
	var req request_models.CreateTrekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	id, err := t.trekService.CreateTrek(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": id}, "Trek created successfully")
}

func (t *TrekController) UpdateTrek(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trek ID")
		return
	}

	var req request_models.UpdateTrekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	req.ID = id

	if err := t.trekService.UpdateTrek(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trek updated successfully")
}

func (t *TrekController) DeleteTrek(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trek ID")
		return
	}

	if err := t.trekService.DeleteTrek(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trek deleted successfully")
}
