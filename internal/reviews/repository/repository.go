package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brickworks_backend/platform/apperr"
)

const reviewNotFoundMessage = "review not found"

const reviewColumns = `id, rating, comment, name, location, status, is_approved, created_at, updated_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reviews repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a new pending review.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Review, error) {
	query := `
		INSERT INTO reviews (rating, comment, name, location)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + reviewColumns

	rev, err := scanReview(r.pool.QueryRow(ctx, query,
		params.Rating, params.Comment, params.Name, params.Location))
	if err != nil {
		return Review{}, fmt.Errorf("create review: %w", err)
	}
	return rev, nil
}

// ListApproved returns approved reviews, newest first.
func (r *Repo) ListApproved(ctx context.Context) ([]Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE status = 'approved'
		ORDER BY created_at DESC`

	return r.list(ctx, query)
}

// ListAll returns every review, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		ORDER BY created_at DESC`

	return r.list(ctx, query)
}

// SetApproval flips both representations of the approval state in one write.
func (r *Repo) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (Review, error) {
	status := "pending"
	if approved {
		status = "approved"
	}

	query := `
		UPDATE reviews
		SET status = $2, is_approved = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + reviewColumns

	rev, err := scanReview(r.pool.QueryRow(ctx, query, id, status, approved))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Review{}, apperr.NotFound(reviewNotFoundMessage)
		}
		return Review{}, fmt.Errorf("set review approval: %w", err)
	}
	return rev, nil
}

// Delete removes a review and returns the deleted record.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (Review, error) {
	query := `
		DELETE FROM reviews
		WHERE id = $1
		RETURNING ` + reviewColumns

	rev, err := scanReview(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Review{}, apperr.NotFound(reviewNotFoundMessage)
		}
		return Review{}, fmt.Errorf("delete review: %w", err)
	}
	return rev, nil
}

// Summary aggregates the approved review set. An empty set yields zeroes.
func (r *Repo) Summary(ctx context.Context) (Summary, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE status = 'approved'`

	var s Summary
	err := r.pool.QueryRow(ctx, query).Scan(&s.AverageRating, &s.TotalApproved)
	if err != nil {
		return Summary{}, fmt.Errorf("review summary: %w", err)
	}
	return s, nil
}

func (r *Repo) list(ctx context.Context, query string) ([]Review, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]Review, 0)
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}
	return reviews, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReview(row rowScanner) (Review, error) {
	var rev Review
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&rev.ID, &rev.Rating, &rev.Comment, &rev.Name, &rev.Location,
		&rev.Status, &rev.IsApproved, &createdAt, &updatedAt,
	)
	if err != nil {
		return Review{}, err
	}

	rev.CreatedAt = createdAt.Format(time.RFC3339)
	rev.UpdatedAt = updatedAt.Format(time.RFC3339)
	return rev, nil
}
