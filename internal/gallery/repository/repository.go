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

const itemNotFoundMessage = "gallery item not found"

const itemColumns = `id, type, title, description, media_url, file_key, created_at, updated_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new gallery repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a new gallery item.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Item, error) {
	query := `
		INSERT INTO gallery (type, title, description, media_url, file_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + itemColumns

	item, err := scanItem(r.pool.QueryRow(ctx, query,
		params.Type, params.Title, params.Description, params.MediaURL, params.FileKey))
	if err != nil {
		return Item{}, fmt.Errorf("create gallery item: %w", err)
	}
	return item, nil
}

// List returns all gallery items, newest first.
func (r *Repo) List(ctx context.Context) ([]Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM gallery
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list gallery items: %w", err)
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gallery row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gallery rows: %w", err)
	}
	return items, nil
}

// GetByID retrieves a gallery item by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM gallery
		WHERE id = $1`

	item, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, apperr.NotFound(itemNotFoundMessage)
		}
		return Item{}, fmt.Errorf("get gallery item: %w", err)
	}
	return item, nil
}

// Update applies metadata edits; nil fields are left untouched.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Item, error) {
	query := `
		UPDATE gallery
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + itemColumns

	item, err := scanItem(r.pool.QueryRow(ctx, query, params.ID, params.Title, params.Description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, apperr.NotFound(itemNotFoundMessage)
		}
		return Item{}, fmt.Errorf("update gallery item: %w", err)
	}
	return item, nil
}

// Delete removes a gallery item and returns the deleted record.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (Item, error) {
	query := `
		DELETE FROM gallery
		WHERE id = $1
		RETURNING ` + itemColumns

	item, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, apperr.NotFound(itemNotFoundMessage)
		}
		return Item{}, fmt.Errorf("delete gallery item: %w", err)
	}
	return item, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (Item, error) {
	var item Item
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&item.ID, &item.Type, &item.Title, &item.Description,
		&item.MediaURL, &item.FileKey, &createdAt, &updatedAt,
	)
	if err != nil {
		return Item{}, err
	}

	item.CreatedAt = createdAt.Format(time.RFC3339)
	item.UpdatedAt = updatedAt.Format(time.RFC3339)
	return item, nil
}
