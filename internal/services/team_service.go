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

type TeamServiceInterface interface {
	ListActive(ctx context.Context) ([]response_models.TeamMemberResponse, error)
	ListAll(ctx context.Context) ([]db_models.TeamMember, error)
	CreateMember(ctx context.Context, req request_models.CreateTeamMemberRequest) (uuid.UUID, error)
	UpdateMember(ctx context.Context, req request_models.UpdateTeamMemberRequest) error
	DeleteMember(ctx context.Context, id uuid.UUID) error
}

type TeamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamServiceInterface {
	return &TeamService{teamRepo: teamRepo}
}

func (t *TeamService) ListActive(ctx context.Context) ([]response_models.TeamMemberResponse, error) {
	members, err := t.teamRepo.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("listing team members")
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, response_models.TeamMemberResponse{
			ID:           m.ID.String(),
			Name:         m.Name,
			Role:         m.Role,
			Bio:          m.Bio,
			ImageURL:     m.ImageURL,
			DisplayOrder: m.DisplayOrder,
		})
	}
	return responses, nil
}

func (t *TeamService) ListAll(ctx context.Context) ([]db_models.TeamMember, error) {
	members, err := t.teamRepo.ListAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("listing all team members")
		return nil, utils.ErrDatabaseError
	}
	return members, nil
}

func (t *TeamService) CreateMember(ctx context.Context, req request_models.CreateTeamMemberRequest) (uuid.UUID, error) {
	member := memberFromRequest(req)

	id, err := t.teamRepo.Insert(ctx, member)
	if err != nil {
		logrus.WithError(err).Error("creating team member")
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (t *TeamService) UpdateMember(ctx context.Context, req request_models.UpdateTeamMemberRequest) error {
	existing, err := t.teamRepo.GetByID(ctx, req.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrTeamMemberNotFound
	}

	updated := memberFromRequest(req.CreateTeamMemberRequest)
	updated.ID = req.ID
	updated.CreatedAt = existing.CreatedAt

	if err := t.teamRepo.Update(ctx, updated); err != nil {
		logrus.WithError(err).Error("updating team member")
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TeamService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	existing, err := t.teamRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrTeamMemberNotFound
	}

	if err := t.teamRepo.Delete(ctx, id); err != nil {
		logrus.WithError(err).Error("deleting team member")
		return utils.ErrDatabaseError
	}
	return nil
}

func memberFromRequest(req request_models.CreateTeamMemberRequest) *db_models.TeamMember {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &db_models.TeamMember{
		Name:         req.Name,
		Role:         req.Role,
		Bio:          req.Bio,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     active,
	}
}
