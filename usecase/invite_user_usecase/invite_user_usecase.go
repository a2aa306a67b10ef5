package invite_user_usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"

	"pipeshare/domain"
	"pipeshare/port/event_publisher_port"
	"pipeshare/port/invite_port"
	"pipeshare/usecase/access_guard"
	"pipeshare/utils/errors"
	"pipeshare/utils/logger"
)

type InviteUserUsecase struct {
	createInviteGateway invite_port.CreateInvitePort
	guard               *access_guard.AccessGuard
	eventPublisher      event_publisher_port.EventPublisherPort
}

func NewInviteUserUsecase(createInviteGateway invite_port.CreateInvitePort, guard *access_guard.AccessGuard) *InviteUserUsecase {
	return &InviteUserUsecase{
		createInviteGateway: createInviteGateway,
		guard:               guard,
	}
}

// SetEventPublisher sets the publisher used to push the shared pipeline to
// the invited identity.
func (u *InviteUserUsecase) SetEventPublisher(publisher event_publisher_port.EventPublisherPort) {
	u.eventPublisher = publisher
}

// Execute invites an email to a pipeline roster. The email is validated
// before anything crosses the process boundary; a duplicate invite surfaces
// as a conflict with the roster untouched.
func (u *InviteUserUsecase) Execute(ctx context.Context, pipelineID uuid.UUID, email string, permission domain.Permission) (domain.UserAccess, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if err := domain.ValidateEmail(email); err != nil {
		return domain.UserAccess{}, errors.ValidationError("a valid email address is required", map[string]interface{}{
			"email": email,
		})
	}
	if _, err := domain.ParsePermission(permission.String()); err != nil {
		return domain.UserAccess{}, errors.ValidationError("permission must be viewer, editor, or admin", map[string]interface{}{
			"permission": permission.String(),
		})
	}

	caller, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return domain.UserAccess{}, err
	}

	pipeline, err := u.guard.Require(ctx, pipelineID, caller, domain.PermissionAdmin)
	if err != nil {
		if stderrors.Is(err, domain.ErrPipelineNotFound) {
			return domain.UserAccess{}, errors.PipelineNotFoundError(pipelineID.String())
		}
		return domain.UserAccess{}, err
	}

	access, err := u.createInviteGateway.CreateInvite(ctx, pipelineID, email, permission)
	if err != nil {
		if stderrors.Is(err, domain.ErrDuplicateInvite) {
			return domain.UserAccess{}, errors.DuplicateInviteError(email)
		}
		logger.Logger.ErrorContext(ctx, "Failed to create invite", "error", err, "pipeline_id", pipelineID)
		return domain.UserAccess{}, errors.DatabaseError("failed to create invite", err, map[string]interface{}{
			"pipeline_id": pipelineID.String(),
		})
	}

	pipeline.Sharing.Users = append(pipeline.Sharing.Users, access)

	u.publishShared(ctx, email, *pipeline)

	return access, nil
}

// publishShared pushes the pipeline to the invited identity. Best-effort: the
// invite is already persisted, and the invitee reconciles on next fetch.
func (u *InviteUserUsecase) publishShared(ctx context.Context, key domain.IdentityKey, pipeline domain.Pipeline) {
	if u.eventPublisher == nil {
		return
	}
	if err := u.eventPublisher.PublishPipelineShared(ctx, key, pipeline); err != nil {
		logger.Logger.WarnContext(ctx, "Failed to publish shared pipeline", "error", err, "key", key)
	}
}
