package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Increment bumps the metric counter atomically. The upsert avoids a
// read-modify-write race under concurrent tracking calls.
func (r *Repo) Increment(ctx context.Context, metricType string) (int64, error) {
	query := `
		INSERT INTO analytics (metric_type, count, last_updated)
		VALUES ($1, 1, now())
		ON CONFLICT (metric_type)
		DO UPDATE SET count = analytics.count + 1, last_updated = now()
		RETURNING count`

	var count int64
	if err := r.pool.QueryRow(ctx, query, metricType).Scan(&count); err != nil {
		return 0, fmt.Errorf("increment analytics metric %s: %w", metricType, err)
	}
	return count, nil
}

// Counts returns the current value of every tracked counter.
func (r *Repo) Counts(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT metric_type, count FROM analytics`)
	if err != nil {
		return nil, fmt.Errorf("read analytics counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var metricType string
		var count int64
		if err := rows.Scan(&metricType, &count); err != nil {
			return nil, fmt.Errorf("scan analytics row: %w", err)
		}
		counts[metricType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analytics rows: %w", err)
	}
	return counts, nil
}
