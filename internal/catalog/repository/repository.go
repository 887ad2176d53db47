package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"brickworks_backend/platform/apperr"
)

const (
	productNotFoundMessage = "product not found"
	duplicateSlugMessage   = "product with this slug already exists"
	uniqueViolationCode    = "23505"
)

const productColumns = `
	id, name, slug, description, image_url, image_key, type,
	price_per_1000, price_per_trolley, usage_tags, quality_grade,
	is_active, availability, is_archived, archived_at, archived_by,
	created_at, updated_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// ListPublic returns active, unarchived products, newest first.
func (r *Repo) ListPublic(ctx context.Context) ([]Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE AND is_archived = FALSE
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list public products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListAdmin returns all products, optionally including archived ones.
func (r *Repo) ListAdmin(ctx context.Context, includeArchived bool) ([]Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 OR is_archived = FALSE)
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("list admin products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetByID retrieves a product by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1`

	return r.scanOne(ctx, query, id)
}

// GetBySlug retrieves a product by its unique slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE slug = $1`

	return r.scanOne(ctx, query, slug)
}

// CountAll returns the total number of products, archived included.
func (r *Repo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// CountAvailable returns the number of products currently marked available.
func (r *Repo) CountAvailable(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE availability = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count available products: %w", err)
	}
	return count, nil
}

// Create inserts a new product.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Product, error) {
	query := `
		INSERT INTO products (
			name, slug, description, type, price_per_1000, price_per_trolley,
			usage_tags, quality_grade, is_active, availability
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING ` + productColumns

	tags := params.UsageTags
	if tags == nil {
		tags = []string{}
	}

	row := r.pool.QueryRow(ctx, query,
		params.Name, params.Slug, params.Description, params.Type,
		params.PricePer1000, params.PricePerTrolley, tags,
		params.QualityGrade, params.IsActive,
	)

	p, err := scanProduct(row)
	if err != nil {
		if isUniqueViolation(err) {
			return Product{}, apperr.Validation(duplicateSlugMessage)
		}
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Update applies partial changes; nil fields are left untouched.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Product, error) {
	query := `
		UPDATE products
		SET name = COALESCE($2, name),
		    slug = COALESCE($3, slug),
		    description = COALESCE($4, description),
		    type = COALESCE($5, type),
		    price_per_1000 = COALESCE($6, price_per_1000),
		    price_per_trolley = COALESCE($7, price_per_trolley),
		    usage_tags = COALESCE($8, usage_tags),
		    quality_grade = COALESCE($9, quality_grade),
		    is_active = COALESCE($10, is_active),
		    availability = COALESCE($10, availability),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns

	row := r.pool.QueryRow(ctx, query,
		params.ID, params.Name, params.Slug, params.Description, params.Type,
		params.PricePer1000, params.PricePerTrolley, params.UsageTags,
		params.QualityGrade, params.IsActive,
	)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		if isUniqueViolation(err) {
			return Product{}, apperr.Validation(duplicateSlugMessage)
		}
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// SetActive sets the active flag, keeping availability in sync.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (Product, error) {
	query := `
		UPDATE products
		SET is_active = $2, availability = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("set product active: %w", err)
	}
	return p, nil
}

// Archive soft-deletes the product and forces it inactive.
func (r *Repo) Archive(ctx context.Context, id uuid.UUID, archivedBy uuid.UUID) (Product, error) {
	query := `
		UPDATE products
		SET is_archived = TRUE, archived_at = now(), archived_by = $2,
		    is_active = FALSE, availability = FALSE, updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id, archivedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("archive product: %w", err)
	}
	return p, nil
}

// Restore clears the archive fields. The product stays inactive.
func (r *Repo) Restore(ctx context.Context, id uuid.UUID) (Product, error) {
	query := `
		UPDATE products
		SET is_archived = FALSE, archived_at = NULL, archived_by = NULL,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("restore product: %w", err)
	}
	return p, nil
}

// UpdatePricing sets both price fields and optionally availability.
func (r *Repo) UpdatePricing(ctx context.Context, params PricingParams) (Product, error) {
	query := `
		UPDATE products
		SET price_per_1000 = $2,
		    price_per_trolley = $3,
		    is_active = COALESCE($4, is_active),
		    availability = COALESCE($4, availability),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns

	row := r.pool.QueryRow(ctx, query,
		params.ID, params.PricePer1000, params.PricePerTrolley, params.Availability)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("update product pricing: %w", err)
	}
	return p, nil
}

// SetImage replaces the product image URL and object key. Nil values clear
// the image.
func (r *Repo) SetImage(ctx context.Context, id uuid.UUID, imageURL, imageKey *string) (Product, error) {
	query := `
		UPDATE products
		SET image_url = $2, image_key = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id, imageURL, imageKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("set product image: %w", err)
	}
	return p, nil
}

func (r *Repo) scanOne(ctx context.Context, query string, arg interface{}) (Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	var archivedAt *time.Time
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.ImageURL, &p.ImageKey,
		&p.Type, &p.PricePer1000, &p.PricePerTrolley, &p.UsageTags,
		&p.QualityGrade, &p.IsActive, &p.Availability, &p.IsArchived,
		&archivedAt, &p.ArchivedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return Product{}, err
	}

	if archivedAt != nil {
		formatted := archivedAt.Format(time.RFC3339)
		p.ArchivedAt = &formatted
	}
	p.CreatedAt = createdAt.Format(time.RFC3339)
	p.UpdatedAt = updatedAt.Format(time.RFC3339)

	return p, nil
}

func scanProducts(rows pgx.Rows) ([]Product, error) {
	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return products, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
