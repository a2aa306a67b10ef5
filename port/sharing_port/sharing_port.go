package sharing_port

import (
	"context"

	"github.com/google/uuid"

	"pipeshare/domain"
)

// UpdateSharingLevelPort persists the sharing level and copy/export flags of
// a pipeline.
type UpdateSharingLevelPort interface {
	UpdateSharingLevel(ctx context.Context, pipelineID uuid.UUID, level domain.SharingLevel, allowCopy, allowExport bool) error
}
