package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

type ContactController struct {
	contactService services.ContactServiceInterface
}

func NewContactController(contactService services.ContactServiceInterface) *ContactController {
	return &ContactController{contactService: contactService}
}

func (ct *ContactController) SubmitContact(c *gin.Context) {
	var req request_models.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	id, err := ct.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": id}, "Message received, we will get back to you soon")
}

func (ct *ContactController) ListSubmissions(c *gin.Context) {
	page, pageSize, ok := parsePageParams(c)
	if !ok {
		return
	}

	submissions, err := ct.contactService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, submissions, "Submissions fetched successfully")
}

func (ct *ContactController) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid submission ID")
		return
	}

	if err := ct.contactService.MarkRead(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Submission marked as read")
}

func (ct *ContactController) Respond(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid submission ID")
		return
	}

	var req request_models.RespondContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	req.ID = id

	if err := ct.contactService.Respond(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Response saved")
}

func (ct *ContactController) DeleteSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid submission ID")
		return
	}

	if err := ct.contactService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Submission deleted")
}
