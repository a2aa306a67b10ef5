package update_sharing_level_usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"pipeshare/domain"
	"pipeshare/port/event_publisher_port"
	"pipeshare/port/sharing_port"
	"pipeshare/usecase/access_guard"
	"pipeshare/utils/errors"
	"pipeshare/utils/logger"
)

type UpdateSharingLevelUsecase struct {
	updateSharingGateway sharing_port.UpdateSharingLevelPort
	guard                *access_guard.AccessGuard
	eventPublisher       event_publisher_port.EventPublisherPort
}

func NewUpdateSharingLevelUsecase(updateSharingGateway sharing_port.UpdateSharingLevelPort, guard *access_guard.AccessGuard) *UpdateSharingLevelUsecase {
	return &UpdateSharingLevelUsecase{
		updateSharingGateway: updateSharingGateway,
		guard:                guard,
	}
}

// SetEventPublisher sets the publisher used to push the pipeline to the
// tenant domain when the new level grants implicit access.
func (u *UpdateSharingLevelUsecase) SetEventPublisher(publisher event_publisher_port.EventPublisherPort) {
	u.eventPublisher = publisher
}

// Execute persists a new sharing level together with the copy/export flags.
func (u *UpdateSharingLevelUsecase) Execute(ctx context.Context, pipelineID uuid.UUID, level domain.SharingLevel, allowCopy, allowExport bool) error {
	if _, err := domain.ParseSharingLevel(level.String()); err != nil {
		return errors.ValidationError("sharing level must be private, team, organization, or public", map[string]interface{}{
			"level": level.String(),
		})
	}

	caller, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}

	pipeline, err := u.guard.Require(ctx, pipelineID, caller, domain.PermissionAdmin)
	if err != nil {
		if stderrors.Is(err, domain.ErrPipelineNotFound) {
			return errors.PipelineNotFoundError(pipelineID.String())
		}
		return err
	}

	if err := u.updateSharingGateway.UpdateSharingLevel(ctx, pipelineID, level, allowCopy, allowExport); err != nil {
		if stderrors.Is(err, domain.ErrPipelineNotFound) {
			return errors.PipelineNotFoundError(pipelineID.String())
		}
		logger.Logger.ErrorContext(ctx, "Failed to update sharing level", "error", err, "pipeline_id", pipelineID)
		return errors.DatabaseError("failed to update sharing level", err, map[string]interface{}{
			"pipeline_id": pipelineID.String(),
		})
	}

	pipeline.Sharing.Level = level
	pipeline.Sharing.AllowCopy = allowCopy
	pipeline.Sharing.AllowExport = allowExport

	// A non-private level grants implicit viewer access across the tenant, so
	// push the pipeline at the domain key. Best-effort only.
	if u.eventPublisher != nil && level != domain.SharingLevelPrivate {
		if err := u.eventPublisher.PublishPipelineShared(ctx, pipeline.Domain, *pipeline); err != nil {
			logger.Logger.WarnContext(ctx, "Failed to publish shared pipeline", "error", err, "key", pipeline.Domain)
		}
	}

	return nil
}
