// Package invite_gateway adapts the pipeline database driver to the invite
// ports.
package invite_gateway

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pipeshare/driver/pipeline_db"
	"pipeshare/domain"
	"pipeshare/port/invite_port"
	"pipeshare/utils/logger"
)

type InviteGateway struct {
	repo *pipeline_db.PipelineDBRepository
}

func NewInviteGateway(pool pipeline_db.DBPool) *InviteGateway {
	return &InviteGateway{repo: pipeline_db.NewPipelineDBRepository(pool)}
}

func (g *InviteGateway) CreateInvite(ctx context.Context, pipelineID uuid.UUID, email string, permission domain.Permission) (domain.UserAccess, error) {
	access, err := g.repo.CreateInvite(ctx, pipelineID, email, permission)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateInvite) {
			return domain.UserAccess{}, err
		}
		logger.Logger.Error("Error creating invite", "error", err, "pipeline_id", pipelineID)
		return domain.UserAccess{}, err
	}
	logger.Logger.Info("Invite created", "invite_id", access.InviteID, "pipeline_id", pipelineID)
	return access, nil
}

func (g *InviteGateway) ListInvites(ctx context.Context, pipelineID uuid.UUID) ([]domain.UserAccess, error) {
	roster, err := g.repo.ListInvites(ctx, pipelineID)
	if err != nil {
		logger.Logger.Error("Error listing invites", "error", err, "pipeline_id", pipelineID)
		return nil, err
	}
	return roster, nil
}

func (g *InviteGateway) FetchInviteByID(ctx context.Context, inviteID uuid.UUID) (*invite_port.Invite, error) {
	invite, err := g.repo.FetchInviteByID(ctx, inviteID)
	if err != nil {
		if !errors.Is(err, domain.ErrInviteNotFound) {
			logger.Logger.Error("Error fetching invite", "error", err, "invite_id", inviteID)
		}
		return nil, err
	}
	return invite, nil
}

func (g *InviteGateway) DeleteInvite(ctx context.Context, inviteID uuid.UUID) error {
	if err := g.repo.DeleteInvite(ctx, inviteID); err != nil {
		if !errors.Is(err, domain.ErrInviteNotFound) {
			logger.Logger.Error("Error deleting invite", "error", err, "invite_id", inviteID)
		}
		return err
	}
	logger.Logger.Info("Invite revoked", "invite_id", inviteID)
	return nil
}

func (g *InviteGateway) UpdateInvitePermission(ctx context.Context, inviteID uuid.UUID, permission domain.Permission) error {
	if err := g.repo.UpdateInvitePermission(ctx, inviteID, permission); err != nil {
		if !errors.Is(err, domain.ErrInviteNotFound) {
			logger.Logger.Error("Error updating invite permission", "error", err, "invite_id", inviteID)
		}
		return err
	}
	logger.Logger.Info("Invite permission updated", "invite_id", inviteID, "permission", permission)
	return nil
}
