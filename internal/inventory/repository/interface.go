package repository

import (
	"context"

	"github.com/google/uuid"
)

// Snapshot is one stock snapshot row. The newest row is the current stock.
type Snapshot struct {
	ID                uuid.UUID `db:"id"`
	TotalBricks       int64     `db:"total_bricks"`
	AvailableTrolleys int64     `db:"available_trolleys"`
	CreatedAt         string    `db:"created_at"`
	UpdatedAt         string    `db:"updated_at"`
}

// Repository provides access to inventory snapshots.
type Repository interface {
	// Latest returns the most recently created snapshot.
	Latest(ctx context.Context) (Snapshot, error)
	// Upsert updates the newest snapshot in place, or inserts the first one.
	Upsert(ctx context.Context, totalBricks, availableTrolleys int64) (Snapshot, error)
}
