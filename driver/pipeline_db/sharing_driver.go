package pipeline_db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"pipeshare/domain"
)

func (r *PipelineDBRepository) UpdateSharingLevel(ctx context.Context, pipelineID uuid.UUID, level domain.SharingLevel, allowCopy, allowExport bool) error {
	if r.pool == nil {
		return errors.New("database pool not initialized")
	}

	queryString := `
		UPDATE pipelines
		SET sharing_level = $2,
		    allow_copy = $3,
		    allow_export = $4,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, queryString, pipelineID, level, allowCopy, allowExport)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update sharing level",
			"error", err,
			"pipeline_id", pipelineID,
			"level", level)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPipelineNotFound
	}

	return nil
}
