// Package sharing_gateway adapts the pipeline database driver to the sharing
// level port.
package sharing_gateway

import (
	"context"

	"github.com/google/uuid"

	"pipeshare/driver/pipeline_db"
	"pipeshare/domain"
	"pipeshare/utils/logger"
)

type SharingGateway struct {
	repo *pipeline_db.PipelineDBRepository
}

func NewSharingGateway(pool pipeline_db.DBPool) *SharingGateway {
	return &SharingGateway{repo: pipeline_db.NewPipelineDBRepository(pool)}
}

func (g *SharingGateway) UpdateSharingLevel(ctx context.Context, pipelineID uuid.UUID, level domain.SharingLevel, allowCopy, allowExport bool) error {
	if err := g.repo.UpdateSharingLevel(ctx, pipelineID, level, allowCopy, allowExport); err != nil {
		logger.Logger.Error("Error updating sharing level", "error", err, "pipeline_id", pipelineID, "level", level)
		return err
	}
	logger.Logger.Info("Sharing level updated", "pipeline_id", pipelineID, "level", level)
	return nil
}
