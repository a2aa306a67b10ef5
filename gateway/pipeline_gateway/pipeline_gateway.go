// Package pipeline_gateway adapts the pipeline database driver to the
// pipeline ports.
package pipeline_gateway

import (
	"context"

	"github.com/google/uuid"

	"pipeshare/driver/pipeline_db"
	"pipeshare/domain"
	"pipeshare/utils/logger"
)

type PipelineGateway struct {
	repo *pipeline_db.PipelineDBRepository
}

func NewPipelineGateway(pool pipeline_db.DBPool) *PipelineGateway {
	return &PipelineGateway{repo: pipeline_db.NewPipelineDBRepository(pool)}
}

func (g *PipelineGateway) CreatePipeline(ctx context.Context, pipeline domain.Pipeline) (domain.Pipeline, error) {
	created, err := g.repo.CreatePipeline(ctx, pipeline)
	if err != nil {
		logger.Logger.Error("Error creating pipeline", "error", err, "name", pipeline.Name)
		return domain.Pipeline{}, err
	}
	logger.Logger.Info("Pipeline created", "pipeline_id", created.ID, "domain", created.Domain)
	return created, nil
}

func (g *PipelineGateway) ListPipelinesByDomain(ctx context.Context, tenantDomain string) (domain.PipelineList, error) {
	list, err := g.repo.ListPipelinesByDomain(ctx, tenantDomain)
	if err != nil {
		logger.Logger.Error("Error listing pipelines", "error", err, "domain", tenantDomain)
		return domain.PipelineList{}, err
	}
	return list, nil
}

func (g *PipelineGateway) FetchPipelineByID(ctx context.Context, id uuid.UUID) (*domain.Pipeline, error) {
	pipeline, err := g.repo.FetchPipelineByID(ctx, id)
	if err != nil {
		logger.Logger.Error("Error fetching pipeline", "error", err, "pipeline_id", id)
		return nil, err
	}
	return pipeline, nil
}

func (g *PipelineGateway) UpdatePipeline(ctx context.Context, id uuid.UUID, updates domain.PipelineUpdates) error {
	if err := g.repo.UpdatePipeline(ctx, id, updates); err != nil {
		logger.Logger.Error("Error updating pipeline", "error", err, "pipeline_id", id)
		return err
	}
	logger.Logger.Info("Pipeline updated", "pipeline_id", id)
	return nil
}

func (g *PipelineGateway) DeletePipeline(ctx context.Context, id uuid.UUID, tenantDomain string) error {
	if err := g.repo.DeletePipeline(ctx, id, tenantDomain); err != nil {
		logger.Logger.Error("Error deleting pipeline", "error", err, "pipeline_id", id)
		return err
	}
	logger.Logger.Info("Pipeline deleted", "pipeline_id", id)
	return nil
}
