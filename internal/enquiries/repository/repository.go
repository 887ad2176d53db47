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

const enquiryNotFoundMessage = "enquiry not found"

const enquiryColumns = `id, name, phone, message, status, notes, created_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new enquiries repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a new enquiry with status pending.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Enquiry, error) {
	query := `
		INSERT INTO enquiries (name, phone, message)
		VALUES ($1, $2, $3)
		RETURNING ` + enquiryColumns

	e, err := scanEnquiry(r.pool.QueryRow(ctx, query, params.Name, params.Phone, params.Message))
	if err != nil {
		return Enquiry{}, fmt.Errorf("create enquiry: %w", err)
	}
	return e, nil
}

// List returns the newest enquiries up to limit.
func (r *Repo) List(ctx context.Context, limit int) ([]Enquiry, error) {
	query := `
		SELECT ` + enquiryColumns + `
		FROM enquiries
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer rows.Close()

	enquiries := make([]Enquiry, 0)
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan enquiry row: %w", err)
		}
		enquiries = append(enquiries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enquiry rows: %w", err)
	}
	return enquiries, nil
}

// Update applies status/notes edits; nil fields are left untouched.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Enquiry, error) {
	query := `
		UPDATE enquiries
		SET status = COALESCE($2, status),
		    notes = COALESCE($3, notes)
		WHERE id = $1
		RETURNING ` + enquiryColumns

	e, err := scanEnquiry(r.pool.QueryRow(ctx, query, params.ID, params.Status, params.Notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Enquiry{}, apperr.NotFound(enquiryNotFoundMessage)
		}
		return Enquiry{}, fmt.Errorf("update enquiry: %w", err)
	}
	return e, nil
}

// Delete removes an enquiry and returns the deleted record.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (Enquiry, error) {
	query := `
		DELETE FROM enquiries
		WHERE id = $1
		RETURNING ` + enquiryColumns

	e, err := scanEnquiry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Enquiry{}, apperr.NotFound(enquiryNotFoundMessage)
		}
		return Enquiry{}, fmt.Errorf("delete enquiry: %w", err)
	}
	return e, nil
}

// CountAll returns the total number of enquiries.
func (r *Repo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM enquiries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count enquiries: %w", err)
	}
	return count, nil
}

// CountSince returns the number of enquiries created at or after the cutoff.
func (r *Repo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM enquiries WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count enquiries since: %w", err)
	}
	return count, nil
}

// PeakTimeBucket buckets enquiries by local business hour (Asia/Kolkata):
// Morning 05-12, Afternoon 12-17, Evening otherwise.
func (r *Repo) PeakTimeBucket(ctx context.Context) (string, error) {
	query := `
		SELECT CASE
			WHEN h >= 5 AND h < 12 THEN 'Morning'
			WHEN h >= 12 AND h < 17 THEN 'Afternoon'
			ELSE 'Evening'
		END AS bucket, COUNT(*) AS count
		FROM (
			SELECT EXTRACT(HOUR FROM created_at AT TIME ZONE 'Asia/Kolkata')::int AS h
			FROM enquiries
		) hours
		GROUP BY bucket
		ORDER BY count DESC
		LIMIT 1`

	var bucket string
	var count int64
	err := r.pool.QueryRow(ctx, query).Scan(&bucket, &count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "N/A", nil
		}
		return "", fmt.Errorf("peak enquiry time bucket: %w", err)
	}
	return bucket, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEnquiry(row rowScanner) (Enquiry, error) {
	var e Enquiry
	var createdAt time.Time

	err := row.Scan(&e.ID, &e.Name, &e.Phone, &e.Message, &e.Status, &e.Notes, &createdAt)
	if err != nil {
		return Enquiry{}, err
	}

	e.CreatedAt = createdAt.Format(time.RFC3339)
	return e, nil
}
