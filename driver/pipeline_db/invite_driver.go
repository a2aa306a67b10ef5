package pipeline_db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pipeshare/domain"
	"pipeshare/port/invite_port"
)

// pgUniqueViolation is the Postgres error code raised by the
// (pipeline_id, email) unique constraint on pipeline_invites.
const pgUniqueViolation = "23505"

func (r *PipelineDBRepository) CreateInvite(ctx context.Context, pipelineID uuid.UUID, email string, permission domain.Permission) (domain.UserAccess, error) {
	if r.pool == nil {
		return domain.UserAccess{}, errors.New("database pool not initialized")
	}

	queryString := `
		INSERT INTO pipeline_invites (id, pipeline_id, email, permission)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	access := domain.UserAccess{
		InviteID:   uuid.New(),
		Email:      email,
		Permission: permission,
	}

	err := r.pool.QueryRow(ctx, queryString, access.InviteID, pipelineID, email, permission).Scan(&access.InvitedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.UserAccess{}, domain.ErrDuplicateInvite
		}
		slog.ErrorContext(ctx, "failed to insert invite",
			"error", err,
			"pipeline_id", pipelineID)
		return domain.UserAccess{}, err
	}

	return access, nil
}

func (r *PipelineDBRepository) ListInvites(ctx context.Context, pipelineID uuid.UUID) ([]domain.UserAccess, error) {
	if r.pool == nil {
		return nil, errors.New("database pool not initialized")
	}

	queryString := `
		SELECT id, email, permission, created_at
		FROM pipeline_invites
		WHERE pipeline_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, queryString, pipelineID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query invites",
			"error", err,
			"pipeline_id", pipelineID)
		return nil, err
	}
	defer rows.Close()

	roster := []domain.UserAccess{}
	for rows.Next() {
		var access domain.UserAccess
		var permission string
		if err := rows.Scan(&access.InviteID, &access.Email, &permission, &access.InvitedAt); err != nil {
			slog.ErrorContext(ctx, "failed to scan invite row", "error", err)
			return nil, err
		}
		access.Permission = domain.Permission(permission)
		roster = append(roster, access)
	}

	if err := rows.Err(); err != nil {
		slog.ErrorContext(ctx, "error iterating invite rows", "error", err)
		return nil, err
	}

	return roster, nil
}

func (r *PipelineDBRepository) FetchInviteByID(ctx context.Context, inviteID uuid.UUID) (*invite_port.Invite, error) {
	if r.pool == nil {
		return nil, errors.New("database pool not initialized")
	}

	queryString := `
		SELECT pipeline_id, email, permission, created_at
		FROM pipeline_invites
		WHERE id = $1
	`

	invite := invite_port.Invite{Access: domain.UserAccess{InviteID: inviteID}}
	var permission string
	err := r.pool.QueryRow(ctx, queryString, inviteID).Scan(
		&invite.PipelineID,
		&invite.Access.Email,
		&permission,
		&invite.Access.InvitedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInviteNotFound
		}
		slog.ErrorContext(ctx, "failed to fetch invite",
			"error", err,
			"invite_id", inviteID)
		return nil, err
	}
	invite.Access.Permission = domain.Permission(permission)

	return &invite, nil
}

func (r *PipelineDBRepository) DeleteInvite(ctx context.Context, inviteID uuid.UUID) error {
	if r.pool == nil {
		return errors.New("database pool not initialized")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM pipeline_invites WHERE id = $1`, inviteID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete invite",
			"error", err,
			"invite_id", inviteID)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInviteNotFound
	}

	return nil
}

func (r *PipelineDBRepository) UpdateInvitePermission(ctx context.Context, inviteID uuid.UUID, permission domain.Permission) error {
	if r.pool == nil {
		return errors.New("database pool not initialized")
	}

	tag, err := r.pool.Exec(ctx, `UPDATE pipeline_invites SET permission = $2 WHERE id = $1`, inviteID, permission)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update invite permission",
			"error", err,
			"invite_id", inviteID)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInviteNotFound
	}

	return nil
}
