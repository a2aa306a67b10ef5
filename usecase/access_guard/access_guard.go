// Package access_guard resolves the effective permission a caller holds on a
// pipeline. Every sharing usecase gates through it so authorization logic
// lives in exactly one place: domain.EffectivePermission.
package access_guard

import (
	"context"

	"github.com/google/uuid"

	"pipeshare/domain"
	"pipeshare/port/invite_port"
	"pipeshare/port/pipeline_port"
	"pipeshare/utils/errors"
)

type AccessGuard struct {
	fetchPipelineGateway pipeline_port.FetchPipelinePort
	listInvitesGateway   invite_port.ListInvitesPort
}

func NewAccessGuard(fetchPipelineGateway pipeline_port.FetchPipelinePort, listInvitesGateway invite_port.ListInvitesPort) *AccessGuard {
	return &AccessGuard{
		fetchPipelineGateway: fetchPipelineGateway,
		listInvitesGateway:   listInvitesGateway,
	}
}

// Load fetches a pipeline together with its roster, returning the caller's
// effective permission on it.
func (g *AccessGuard) Load(ctx context.Context, pipelineID uuid.UUID, caller *domain.UserContext) (*domain.Pipeline, domain.Permission, error) {
	pipeline, err := g.fetchPipelineGateway.FetchPipelineByID(ctx, pipelineID)
	if err != nil {
		return nil, domain.PermissionNone, err
	}

	roster, err := g.listInvitesGateway.ListInvites(ctx, pipelineID)
	if err != nil {
		return nil, domain.PermissionNone, err
	}
	pipeline.Sharing.Users = roster

	identity := ""
	if caller != nil {
		identity = caller.Email
	}
	// Tenant-level implicit access only applies inside the owning domain.
	config := pipeline.Sharing
	if caller == nil || (caller.Domain != pipeline.Domain && config.Level != domain.SharingLevelPublic) {
		config.Level = domain.SharingLevelPrivate
	}

	return pipeline, domain.EffectivePermission(identity, pipeline.OwnerEmail, config), nil
}

// Require loads the pipeline and fails with a forbidden error when the caller
// holds less than the needed permission.
func (g *AccessGuard) Require(ctx context.Context, pipelineID uuid.UUID, caller *domain.UserContext, needed domain.Permission) (*domain.Pipeline, error) {
	pipeline, effective, err := g.Load(ctx, pipelineID, caller)
	if err != nil {
		return nil, err
	}

	if !effective.AtLeast(needed) {
		return nil, errors.ForbiddenError("insufficient permission for this pipeline", map[string]interface{}{
			"pipeline_id": pipelineID.String(),
			"needed":      needed.String(),
			"effective":   effective.String(),
		})
	}

	return pipeline, nil
}
