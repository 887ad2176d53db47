package repository

import (
	"context"

	"github.com/google/uuid"
)

// Product represents a catalog entry.
type Product struct {
	ID              uuid.UUID
	Name            string
	Slug            string
	Description     *string
	ImageURL        *string
	ImageKey        *string
	Type            string
	PricePer1000    float64
	PricePerTrolley float64
	UsageTags       []string
	QualityGrade    string
	IsActive        bool
	Availability    bool
	IsArchived      bool
	ArchivedAt      *string
	ArchivedBy      *uuid.UUID
	CreatedAt       string
	UpdatedAt       string
}

// CreateParams contains the fields needed to create a product.
type CreateParams struct {
	Name            string
	Slug            string
	Description     *string
	Type            string
	PricePer1000    float64
	PricePerTrolley float64
	UsageTags       []string
	QualityGrade    string
	IsActive        bool
}

// UpdateParams contains optional product fields; nil fields are unchanged.
type UpdateParams struct {
	ID              uuid.UUID
	Name            *string
	Slug            *string
	Description     *string
	Type            *string
	PricePer1000    *float64
	PricePerTrolley *float64
	UsageTags       []string
	QualityGrade    *string
	IsActive        *bool
}

// PricingParams contains the legacy pricing-endpoint fields.
type PricingParams struct {
	ID              uuid.UUID
	PricePer1000    float64
	PricePerTrolley float64
	Availability    *bool
}

// ProductReader defines read operations for products.
type ProductReader interface {
	// ListPublic returns active, unarchived products, newest first.
	ListPublic(ctx context.Context) ([]Product, error)

	// ListAdmin returns all products, optionally including archived ones.
	ListAdmin(ctx context.Context, includeArchived bool) ([]Product, error)

	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	GetBySlug(ctx context.Context, slug string) (Product, error)
	CountAll(ctx context.Context) (int64, error)
	CountAvailable(ctx context.Context) (int64, error)
}

// ProductWriter defines write operations for products.
type ProductWriter interface {
	Create(ctx context.Context, params CreateParams) (Product, error)
	Update(ctx context.Context, params UpdateParams) (Product, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (Product, error)
	Archive(ctx context.Context, id uuid.UUID, archivedBy uuid.UUID) (Product, error)
	Restore(ctx context.Context, id uuid.UUID) (Product, error)
	UpdatePricing(ctx context.Context, params PricingParams) (Product, error)
	SetImage(ctx context.Context, id uuid.UUID, imageURL, imageKey *string) (Product, error)
}

// Repository combines read and write operations.
type Repository interface {
	ProductReader
	ProductWriter
}
