package invite_port

import (
	"context"

	"github.com/google/uuid"

	"pipeshare/domain"
)

// Invite pairs a roster entry with the pipeline it belongs to.
type Invite struct {
	PipelineID uuid.UUID
	Access     domain.UserAccess
}

// CreateInvitePort appends a user to a pipeline roster. A duplicate email on
// the same pipeline fails with domain.ErrDuplicateInvite.
type CreateInvitePort interface {
	CreateInvite(ctx context.Context, pipelineID uuid.UUID, email string, permission domain.Permission) (domain.UserAccess, error)
}

// ListInvitesPort returns a pipeline roster in invite order.
type ListInvitesPort interface {
	ListInvites(ctx context.Context, pipelineID uuid.UUID) ([]domain.UserAccess, error)
}

// FetchInvitePort loads a single invite by id; missing ids fail with
// domain.ErrInviteNotFound.
type FetchInvitePort interface {
	FetchInviteByID(ctx context.Context, inviteID uuid.UUID) (*Invite, error)
}

// DeleteInvitePort removes an invite by id; missing ids fail with
// domain.ErrInviteNotFound.
type DeleteInvitePort interface {
	DeleteInvite(ctx context.Context, inviteID uuid.UUID) error
}

// UpdateInvitePermissionPort overwrites the permission of an invite; missing
// ids fail with domain.ErrInviteNotFound.
type UpdateInvitePermissionPort interface {
	UpdateInvitePermission(ctx context.Context, inviteID uuid.UUID, permission domain.Permission) error
}
