package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/response_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

type ContactServiceInterface interface {
	Submit(ctx context.Context, req request_models.SubmitContactRequest) (uuid.UUID, error)
	List(ctx context.Context, page, pageSize int) ([]response_models.ContactSubmissionResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Respond(ctx context.Context, req request_models.RespondContactRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContactService struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactServiceInterface {
	return &ContactService{contactRepo: contactRepo}
}

func (c *ContactService) Submit(ctx context.Context, req request_models.SubmitContactRequest) (uuid.UUID, error) {
	submission := &db_models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	id, err := c.contactRepo.Insert(ctx, submission)
	if err != nil {
		logrus.WithError(err).Error("saving contact submission")
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (c *ContactService) List(ctx context.Context, page, pageSize int) ([]response_models.ContactSubmissionResponse, error) {
	submissions, err := c.contactRepo.List(ctx, page, pageSize)
	if err != nil {
		logrus.WithError(err).Error("listing contact submissions")
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ContactSubmissionResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, toContactResponse(&submissions[i]))
	}
	return responses, nil
}

func (c *ContactService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := c.contactRepo.MarkRead(ctx, id); err != nil {
		if isNotFound(err) {
			return utils.ErrContactNotFound
		}
		logrus.WithError(err).Error("marking contact submission read")
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *ContactService) Respond(ctx context.Context, req request_models.RespondContactRequest) error {
	if err := c.contactRepo.SetResponse(ctx, req.ID, req.Response); err != nil {
		if isNotFound(err) {
			return utils.ErrContactNotFound
		}
		logrus.WithError(err).Error("saving contact response")
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := c.contactRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrContactNotFound
	}

	if err := c.contactRepo.Delete(ctx, id); err != nil {
		logrus.WithError(err).Error("deleting contact submission")
		return utils.ErrDatabaseError
	}
	return nil
}

func toContactResponse(s *db_models.ContactSubmission) response_models.ContactSubmissionResponse {
	return response_models.ContactSubmissionResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Subject:   s.Subject,
		Message:   s.Message,
		IsRead:    s.IsRead,
		Response:  s.Response,
		CreatedAt: s.CreatedAt,
	}
}
