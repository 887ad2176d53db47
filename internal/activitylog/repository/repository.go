package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create appends an entry to the activity log.
func (r *Repo) Create(ctx context.Context, params CreateParams) error {
	query := `
		INSERT INTO activity_logs (action_type, entity_type, entity_id, message, actor_id, actor_name, actor_role, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		params.ActionType, params.EntityType, params.EntityID, params.Message,
		params.ActorID, params.ActorName, params.ActorRole, params.Metadata,
	)
	if err != nil {
		return fmt.Errorf("create activity log entry: %w", err)
	}
	return nil
}

// List retrieves the newest entries, up to limit.
func (r *Repo) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, action_type, entity_type, entity_id, message, actor_id, actor_name, actor_role, metadata, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity log entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]Entry, error) {
	var results []Entry

	for rows.Next() {
		var e Entry
		var createdAt time.Time

		err := rows.Scan(
			&e.ID, &e.ActionType, &e.EntityType, &e.EntityID, &e.Message,
			&e.ActorID, &e.ActorName, &e.ActorRole, &e.Metadata, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity log entry: %w", err)
		}

		e.CreatedAt = createdAt.Format(time.RFC3339)
		results = append(results, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity log entries: %w", err)
	}

	return results, nil
}
