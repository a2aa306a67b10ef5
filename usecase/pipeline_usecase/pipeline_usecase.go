// Package pipeline_usecase covers the pipeline CRUD operations the sharing
// layer sits on top of: create, list, update, delete.
package pipeline_usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"

	"pipeshare/domain"
	"pipeshare/port/pipeline_port"
	"pipeshare/usecase/access_guard"
	"pipeshare/utils/errors"
	"pipeshare/utils/logger"
)

type CreatePipelineUsecase struct {
	createPipelineGateway pipeline_port.CreatePipelinePort
}

func NewCreatePipelineUsecase(createPipelineGateway pipeline_port.CreatePipelinePort) *CreatePipelineUsecase {
	return &CreatePipelineUsecase{createPipelineGateway: createPipelineGateway}
}

func (u *CreatePipelineUsecase) Execute(ctx context.Context, name, description string) (domain.Pipeline, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Pipeline{}, errors.ValidationError("pipeline name is required", nil)
	}

	caller, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return domain.Pipeline{}, err
	}

	pipeline := domain.Pipeline{
		Name:        strings.TrimSpace(name),
		Description: description,
		Domain:      caller.Domain,
		OwnerID:     caller.UserID,
		OwnerEmail:  caller.Email,
		Sharing:     domain.DefaultSharingConfiguration(),
	}

	created, err := u.createPipelineGateway.CreatePipeline(ctx, pipeline)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to create pipeline", "error", err)
		return domain.Pipeline{}, errors.DatabaseError("failed to create pipeline", err, nil)
	}

	return created, nil
}

type ListPipelinesUsecase struct {
	listPipelinesGateway pipeline_port.ListPipelinesPort
}

func NewListPipelinesUsecase(listPipelinesGateway pipeline_port.ListPipelinesPort) *ListPipelinesUsecase {
	return &ListPipelinesUsecase{listPipelinesGateway: listPipelinesGateway}
}

func (u *ListPipelinesUsecase) Execute(ctx context.Context) (domain.PipelineList, error) {
	caller, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return domain.PipelineList{}, err
	}

	list, err := u.listPipelinesGateway.ListPipelinesByDomain(ctx, caller.Domain)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to list pipelines", "error", err, "domain", caller.Domain)
		return domain.PipelineList{}, errors.DatabaseError("failed to list pipelines", err, nil)
	}

	return list, nil
}

type UpdatePipelineUsecase struct {
	updatePipelineGateway pipeline_port.UpdatePipelinePort
	guard                 *access_guard.AccessGuard
}

func NewUpdatePipelineUsecase(updatePipelineGateway pipeline_port.UpdatePipelinePort, guard *access_guard.AccessGuard) *UpdatePipelineUsecase {
	return &UpdatePipelineUsecase{
		updatePipelineGateway: updatePipelineGateway,
		guard:                 guard,
	}
}

func (u *UpdatePipelineUsecase) Execute(ctx context.Context, pipelineID uuid.UUID, updates domain.PipelineUpdates) error {
	if updates.Name != nil && strings.TrimSpace(*updates.Name) == "" {
		return errors.ValidationError("pipeline name cannot be empty", nil)
	}

	caller, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := u.guard.Require(ctx, pipelineID, caller, domain.PermissionEditor); err != nil {
		if stderrors.Is(err, domain.ErrPipelineNotFound) {
			return errors.PipelineNotFoundError(pipelineID.String())
		}
		return err
	}

	if err := u.updatePipelineGateway.UpdatePipeline(ctx, pipelineID, updates); err != nil {
		if stderrors.Is(err, domain.ErrPipelineNotFound) {
			return errors.PipelineNotFoundError(pipelineID.String())
		}
		logger.Logger.ErrorContext(ctx, "Failed to update pipeline", "error", err, "pipeline_id", pipelineID)
		return errors.DatabaseError("failed to update pipeline", err, nil)
	}

	return nil
}

type DeletePipelineUsecase struct {
	deletePipelineGateway pipeline_port.DeletePipelinePort
	guard                 *access_guard.AccessGuard
}

func NewDeletePipelineUsecase(deletePipelineGateway pipeline_port.DeletePipelinePort, guard *access_guard.AccessGuard) *DeletePipelineUsecase {
	return &DeletePipelineUsecase{
		deletePipelineGateway: deletePipelineGateway,
		guard:                 guard,
	}
}

func (u *DeletePipelineUsecase) Execute(ctx context.Context, pipelineID uuid.UUID) error {
	caller, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := u.guard.Require(ctx, pipelineID, caller, domain.PermissionAdmin); err != nil {
		if stderrors.Is(err, domain.ErrPipelineNotFound) {
			return errors.PipelineNotFoundError(pipelineID.String())
		}
		return err
	}

	if err := u.deletePipelineGateway.DeletePipeline(ctx, pipelineID, caller.Domain); err != nil {
		if stderrors.Is(err, domain.ErrPipelineNotFound) {
			return errors.PipelineNotFoundError(pipelineID.String())
		}
		logger.Logger.ErrorContext(ctx, "Failed to delete pipeline", "error", err, "pipeline_id", pipelineID)
		return errors.DatabaseError("failed to delete pipeline", err, nil)
	}

	return nil
}
