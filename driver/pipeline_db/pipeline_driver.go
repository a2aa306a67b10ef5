package pipeline_db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pipeshare/domain"
)

func (r *PipelineDBRepository) CreatePipeline(ctx context.Context, pipeline domain.Pipeline) (domain.Pipeline, error) {
	if r.pool == nil {
		return domain.Pipeline{}, errors.New("database pool not initialized")
	}

	queryString := `
		INSERT INTO pipelines (id, name, description, domain, owner_id, owner_email, sales_target, sharing_level, allow_copy, allow_export)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	if pipeline.ID == uuid.Nil {
		pipeline.ID = uuid.New()
	}
	if pipeline.Sharing.Level == "" {
		pipeline.Sharing = domain.DefaultSharingConfiguration()
	}

	err := r.pool.QueryRow(ctx, queryString,
		pipeline.ID,
		pipeline.Name,
		pipeline.Description,
		pipeline.Domain,
		pipeline.OwnerID,
		pipeline.OwnerEmail,
		pipeline.SalesTarget,
		pipeline.Sharing.Level,
		pipeline.Sharing.AllowCopy,
		pipeline.Sharing.AllowExport,
	).Scan(&pipeline.CreatedAt, &pipeline.UpdatedAt)
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert pipeline",
			"error", err,
			"pipeline_id", pipeline.ID)
		return domain.Pipeline{}, err
	}

	return pipeline, nil
}

func (r *PipelineDBRepository) ListPipelinesByDomain(ctx context.Context, tenantDomain string) (domain.PipelineList, error) {
	if r.pool == nil {
		return domain.PipelineList{}, errors.New("database pool not initialized")
	}

	queryString := `
		SELECT id, name, description, domain, owner_id, owner_email, sales_target, sharing_level, allow_copy, allow_export, created_at, updated_at
		FROM pipelines
		WHERE domain = $1
		ORDER BY updated_at DESC
	`

	rows, err := r.pool.Query(ctx, queryString, tenantDomain)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query pipelines by domain",
			"error", err,
			"domain", tenantDomain)
		return domain.PipelineList{}, err
	}
	defer rows.Close()

	list := domain.PipelineList{Pipelines: []domain.Pipeline{}}

	for rows.Next() {
		pipeline, err := scanPipeline(rows)
		if err != nil {
			slog.ErrorContext(ctx, "failed to scan pipeline row", "error", err)
			return domain.PipelineList{}, err
		}
		list.Pipelines = append(list.Pipelines, pipeline)
	}

	if err := rows.Err(); err != nil {
		slog.ErrorContext(ctx, "error iterating pipeline rows", "error", err)
		return domain.PipelineList{}, err
	}

	countQuery := `
		SELECT COUNT(*)
		FROM deals d
		INNER JOIN pipelines p ON d.pipeline_id = p.id
		WHERE p.domain = $1
	`

	if err := r.pool.QueryRow(ctx, countQuery, tenantDomain).Scan(&list.TotalDeals); err != nil {
		slog.ErrorContext(ctx, "failed to count deals for domain",
			"error", err,
			"domain", tenantDomain)
		return domain.PipelineList{}, err
	}

	return list, nil
}

func (r *PipelineDBRepository) FetchPipelineByID(ctx context.Context, id uuid.UUID) (*domain.Pipeline, error) {
	if r.pool == nil {
		return nil, errors.New("database pool not initialized")
	}

	queryString := `
		SELECT id, name, description, domain, owner_id, owner_email, sales_target, sharing_level, allow_copy, allow_export, created_at, updated_at
		FROM pipelines
		WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, queryString, id)
	pipeline, err := scanPipeline(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPipelineNotFound
		}
		slog.ErrorContext(ctx, "failed to fetch pipeline",
			"error", err,
			"pipeline_id", id)
		return nil, err
	}

	return &pipeline, nil
}

func (r *PipelineDBRepository) UpdatePipeline(ctx context.Context, id uuid.UUID, updates domain.PipelineUpdates) error {
	if r.pool == nil {
		return errors.New("database pool not initialized")
	}

	queryString := `
		UPDATE pipelines
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    sales_target = COALESCE($4, sales_target),
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, queryString, id, updates.Name, updates.Description, updates.SalesTarget)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update pipeline",
			"error", err,
			"pipeline_id", id)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPipelineNotFound
	}

	return nil
}

func (r *PipelineDBRepository) DeletePipeline(ctx context.Context, id uuid.UUID, tenantDomain string) error {
	if r.pool == nil {
		return errors.New("database pool not initialized")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM pipelines WHERE id = $1 AND domain = $2`, id, tenantDomain)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete pipeline",
			"error", err,
			"pipeline_id", id)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPipelineNotFound
	}

	return nil
}

func scanPipeline(row pgx.Row) (domain.Pipeline, error) {
	var pipeline domain.Pipeline
	var level string
	err := row.Scan(
		&pipeline.ID,
		&pipeline.Name,
		&pipeline.Description,
		&pipeline.Domain,
		&pipeline.OwnerID,
		&pipeline.OwnerEmail,
		&pipeline.SalesTarget,
		&level,
		&pipeline.Sharing.AllowCopy,
		&pipeline.Sharing.AllowExport,
		&pipeline.CreatedAt,
		&pipeline.UpdatedAt,
	)
	if err != nil {
		return domain.Pipeline{}, err
	}
	pipeline.Sharing.Level = domain.SharingLevel(level)
	return pipeline, nil
}
