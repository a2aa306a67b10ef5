package pipeline_port

import (
	"context"

	"github.com/google/uuid"

	"pipeshare/domain"
)

// CreatePipelinePort persists a new pipeline.
type CreatePipelinePort interface {
	CreatePipeline(ctx context.Context, pipeline domain.Pipeline) (domain.Pipeline, error)
}

// ListPipelinesPort lists the pipelines visible to a tenant domain.
type ListPipelinesPort interface {
	ListPipelinesByDomain(ctx context.Context, tenantDomain string) (domain.PipelineList, error)
}

// FetchPipelinePort loads a single pipeline with its sharing level; the
// roster is loaded lazily through InvitePort.
type FetchPipelinePort interface {
	FetchPipelineByID(ctx context.Context, id uuid.UUID) (*domain.Pipeline, error)
}

// UpdatePipelinePort applies CRUD updates to a pipeline.
type UpdatePipelinePort interface {
	UpdatePipeline(ctx context.Context, id uuid.UUID, updates domain.PipelineUpdates) error
}

// DeletePipelinePort deletes a pipeline scoped to its owning domain.
type DeletePipelinePort interface {
	DeletePipeline(ctx context.Context, id uuid.UUID, tenantDomain string) error
}
