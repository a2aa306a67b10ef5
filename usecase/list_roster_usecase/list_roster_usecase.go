package list_roster_usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"pipeshare/domain"
	"pipeshare/usecase/access_guard"
	"pipeshare/utils/errors"
)

type ListRosterUsecase struct {
	guard *access_guard.AccessGuard
}

func NewListRosterUsecase(guard *access_guard.AccessGuard) *ListRosterUsecase {
	return &ListRosterUsecase{guard: guard}
}

// Execute returns the sharing configuration of a pipeline: its level, the
// copy/export flags, and the roster in invite order. The roster is loaded
// lazily, on the first open of the sharing settings, so a pipeline that has
// never been shared simply yields its defaults with an empty roster.
func (u *ListRosterUsecase) Execute(ctx context.Context, pipelineID uuid.UUID) (domain.SharingConfiguration, error) {
	caller, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return domain.SharingConfiguration{}, err
	}

	pipeline, err := u.guard.Require(ctx, pipelineID, caller, domain.PermissionViewer)
	if err != nil {
		if stderrors.Is(err, domain.ErrPipelineNotFound) {
			return domain.SharingConfiguration{}, errors.PipelineNotFoundError(pipelineID.String())
		}
		return domain.SharingConfiguration{}, err
	}

	return pipeline.Sharing, nil
}
