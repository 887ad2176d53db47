package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brickworks_backend/platform/apperr"
)

const snapshotNotFoundMessage = "inventory not configured"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inventory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Latest returns the most recently created snapshot.
func (r *Repo) Latest(ctx context.Context) (Snapshot, error) {
	query := `
		SELECT id, total_bricks, available_trolleys, created_at, updated_at
		FROM inventory
		ORDER BY created_at DESC
		LIMIT 1`

	var s Snapshot
	var createdAt, updatedAt time.Time

	err := r.pool.QueryRow(ctx, query).Scan(
		&s.ID, &s.TotalBricks, &s.AvailableTrolleys, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Snapshot{}, apperr.NotFound(snapshotNotFoundMessage)
		}
		return Snapshot{}, fmt.Errorf("get latest inventory snapshot: %w", err)
	}

	s.CreatedAt = createdAt.Format(time.RFC3339)
	s.UpdatedAt = updatedAt.Format(time.RFC3339)

	return s, nil
}

// Upsert updates the newest snapshot in place, or inserts the first one.
func (r *Repo) Upsert(ctx context.Context, totalBricks, availableTrolleys int64) (Snapshot, error) {
	updateQuery := `
		UPDATE inventory
		SET total_bricks = $1, available_trolleys = $2, updated_at = now()
		WHERE id = (SELECT id FROM inventory ORDER BY created_at DESC LIMIT 1)
		RETURNING id, total_bricks, available_trolleys, created_at, updated_at`

	var s Snapshot
	var createdAt, updatedAt time.Time

	err := r.pool.QueryRow(ctx, updateQuery, totalBricks, availableTrolleys).Scan(
		&s.ID, &s.TotalBricks, &s.AvailableTrolleys, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		insertQuery := `
			INSERT INTO inventory (total_bricks, available_trolleys)
			VALUES ($1, $2)
			RETURNING id, total_bricks, available_trolleys, created_at, updated_at`
		err = r.pool.QueryRow(ctx, insertQuery, totalBricks, availableTrolleys).Scan(
			&s.ID, &s.TotalBricks, &s.AvailableTrolleys, &createdAt, &updatedAt,
		)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("upsert inventory snapshot: %w", err)
	}

	s.CreatedAt = createdAt.Format(time.RFC3339)
	s.UpdatedAt = updatedAt.Format(time.RFC3339)

	return s, nil
}
