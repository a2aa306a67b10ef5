package change_permission_usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"pipeshare/domain"
	"pipeshare/port/event_publisher_port"
	"pipeshare/port/invite_port"
	"pipeshare/usecase/access_guard"
	"pipeshare/utils/errors"
	"pipeshare/utils/logger"
)

type ChangePermissionUsecase struct {
	fetchInviteGateway  invite_port.FetchInvitePort
	updateInviteGateway invite_port.UpdateInvitePermissionPort
	guard               *access_guard.AccessGuard
	eventPublisher      event_publisher_port.EventPublisherPort
}

func NewChangePermissionUsecase(fetchInviteGateway invite_port.FetchInvitePort, updateInviteGateway invite_port.UpdateInvitePermissionPort, guard *access_guard.AccessGuard) *ChangePermissionUsecase {
	return &ChangePermissionUsecase{
		fetchInviteGateway:  fetchInviteGateway,
		updateInviteGateway: updateInviteGateway,
		guard:               guard,
	}
}

// SetEventPublisher sets the publisher used to push the refreshed pipeline to
// the affected identity.
func (u *ChangePermissionUsecase) SetEventPublisher(publisher event_publisher_port.EventPublisherPort) {
	u.eventPublisher = publisher
}

// Execute overwrites the permission of an existing invite. Permission changes
// are overwrites, not merges.
func (u *ChangePermissionUsecase) Execute(ctx context.Context, inviteID uuid.UUID, permission domain.Permission) error {
	if _, err := domain.ParsePermission(permission.String()); err != nil {
		return errors.ValidationError("permission must be viewer, editor, or admin", map[string]interface{}{
			"permission": permission.String(),
		})
	}

	caller, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}

	invite, err := u.fetchInviteGateway.FetchInviteByID(ctx, inviteID)
	if err != nil {
		if stderrors.Is(err, domain.ErrInviteNotFound) {
			return errors.InviteNotFoundError(inviteID.String())
		}
		return errors.DatabaseError("failed to load invite", err, map[string]interface{}{
			"invite_id": inviteID.String(),
		})
	}

	pipeline, err := u.guard.Require(ctx, invite.PipelineID, caller, domain.PermissionAdmin)
	if err != nil {
		return err
	}

	if err := u.updateInviteGateway.UpdateInvitePermission(ctx, inviteID, permission); err != nil {
		if stderrors.Is(err, domain.ErrInviteNotFound) {
			return errors.InviteNotFoundError(inviteID.String())
		}
		logger.Logger.ErrorContext(ctx, "Failed to update invite permission", "error", err, "invite_id", inviteID)
		return errors.DatabaseError("failed to update invite permission", err, map[string]interface{}{
			"invite_id": inviteID.String(),
		})
	}

	for i := range pipeline.Sharing.Users {
		if pipeline.Sharing.Users[i].InviteID == inviteID {
			pipeline.Sharing.Users[i].Permission = permission
		}
	}

	if u.eventPublisher != nil {
		if err := u.eventPublisher.PublishPipelineShared(ctx, invite.Access.Email, *pipeline); err != nil {
			logger.Logger.WarnContext(ctx, "Failed to publish shared pipeline", "error", err, "key", invite.Access.Email)
		}
	}

	return nil
}
