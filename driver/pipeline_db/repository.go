// Package pipeline_db provides the Postgres persistence driver for pipelines,
// invites, and sharing configuration.
package pipeline_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool the drivers use. pgxmock satisfies it
// in tests.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PipelineDBRepository struct {
	pool DBPool
}

func NewPipelineDBRepository(pool DBPool) *PipelineDBRepository {
	return &PipelineDBRepository{pool: pool}
}
