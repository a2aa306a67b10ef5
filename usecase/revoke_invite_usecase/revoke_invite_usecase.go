package revoke_invite_usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"pipeshare/domain"
	"pipeshare/port/invite_port"
	"pipeshare/usecase/access_guard"
	"pipeshare/utils/errors"
	"pipeshare/utils/logger"
)

type RevokeInviteUsecase struct {
	fetchInviteGateway  invite_port.FetchInvitePort
	deleteInviteGateway invite_port.DeleteInvitePort
	guard               *access_guard.AccessGuard
}

func NewRevokeInviteUsecase(fetchInviteGateway invite_port.FetchInvitePort, deleteInviteGateway invite_port.DeleteInvitePort, guard *access_guard.AccessGuard) *RevokeInviteUsecase {
	return &RevokeInviteUsecase{
		fetchInviteGateway:  fetchInviteGateway,
		deleteInviteGateway: deleteInviteGateway,
		guard:               guard,
	}
}

// Execute revokes an invite by id. Revoking an id that does not exist is a
// no-op surfaced as a not-found condition, never an internal fault.
func (u *RevokeInviteUsecase) Execute(ctx context.Context, inviteID uuid.UUID) error {
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

	if _, err := u.guard.Require(ctx, invite.PipelineID, caller, domain.PermissionAdmin); err != nil {
		return err
	}

	if err := u.deleteInviteGateway.DeleteInvite(ctx, inviteID); err != nil {
		if stderrors.Is(err, domain.ErrInviteNotFound) {
			// Deleted concurrently between fetch and delete; same outcome.
			return errors.InviteNotFoundError(inviteID.String())
		}
		logger.Logger.ErrorContext(ctx, "Failed to revoke invite", "error", err, "invite_id", inviteID)
		return errors.DatabaseError("failed to revoke invite", err, map[string]interface{}{
			"invite_id": inviteID.String(),
		})
	}

	return nil
}
