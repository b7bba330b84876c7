package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/response_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{accountService: accountService}
}

// Login godoc
// @Summary Authenticate an admin account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login credentials"
// @Success 200 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, role, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TokenResponse{Token: token, Role: role}, "Login successful")
}

func (a *AccountController) CreateAccount(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Account created successfully")
}
