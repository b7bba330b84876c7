package request_models

import "github.com/google/uuid"

type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type RespondContactRequest struct {
	ID       uuid.UUID `json:"-"`
	Response string    `json:"response" binding:"required"`
}

type CreateFAQRequest struct {
	Category     string `json:"category"`
	Question     string `json:"question" binding:"required"`
	Answer       string `json:"answer" binding:"required"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type UpdateFAQRequest struct {
	ID uuid.UUID `json:"-"`
	CreateFAQRequest
}

type CreateTeamMemberRequest struct {
	Name         string `json:"name" binding:"required"`
	Role         string `json:"role"`
	Bio          string `json:"bio"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type UpdateTeamMemberRequest struct {
	ID uuid.UUID `json:"-"`
	CreateTeamMemberRequest
}
