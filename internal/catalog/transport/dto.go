package transport

import "github.com/google/uuid"

// CreateProductRequest is the admin payload for creating a product. Slug is
// derived from the name when absent.
type CreateProductRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=120"`
	Slug            string   `json:"slug" validate:"omitempty,max=150"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Type            string   `json:"type" validate:"required,min=2,max=80"`
	PricePer1000    *float64 `json:"pricePer1000" validate:"required,min=0"`
	PricePerTrolley *float64 `json:"pricePerTrolley" validate:"required,min=0"`
	UsageTags       []string `json:"usageTags,omitempty" validate:"omitempty,dive,max=50"`
	QualityGrade    string   `json:"qualityGrade" validate:"required,oneof=First Second Rora"`
	IsActive        *bool    `json:"isActive,omitempty"`
}

// UpdateProductRequest contains optional fields; absent fields are unchanged.
type UpdateProductRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Slug            *string  `json:"slug,omitempty" validate:"omitempty,max=150"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Type            *string  `json:"type,omitempty" validate:"omitempty,min=2,max=80"`
	PricePer1000    *float64 `json:"pricePer1000,omitempty" validate:"omitempty,min=0"`
	PricePerTrolley *float64 `json:"pricePerTrolley,omitempty" validate:"omitempty,min=0"`
	UsageTags       []string `json:"usageTags,omitempty" validate:"omitempty,dive,max=50"`
	QualityGrade    *string  `json:"qualityGrade,omitempty" validate:"omitempty,oneof=First Second Rora"`
	IsActive        *bool    `json:"isActive,omitempty"`
	RemoveImage     bool     `json:"removeImage,omitempty"`
}

// UpdatePricingRequest is the legacy pricing-only endpoint payload.
type UpdatePricingRequest struct {
	PricePer1000    *float64 `json:"pricePer1000" validate:"required,min=0"`
	PricePerTrolley *float64 `json:"pricePerTrolley" validate:"required,min=0"`
	Availability    *bool    `json:"availability,omitempty"`
}

// ProductResponse is the full admin projection of a product.
type ProductResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Description     *string    `json:"description,omitempty"`
	ImageURL        *string    `json:"imageUrl,omitempty"`
	Type            string     `json:"type"`
	PricePer1000    float64    `json:"pricePer1000"`
	PricePerTrolley float64    `json:"pricePerTrolley"`
	UsageTags       []string   `json:"usageTags"`
	QualityGrade    string     `json:"qualityGrade"`
	IsActive        bool       `json:"isActive"`
	Availability    bool       `json:"availability"`
	IsArchived      bool       `json:"isArchived"`
	ArchivedAt      *string    `json:"archivedAt,omitempty"`
	ArchivedBy      *uuid.UUID `json:"archivedBy,omitempty"`
	CreatedAt       string     `json:"createdAt"`
	UpdatedAt       string     `json:"updatedAt"`
}

// PublicProductResponse is the trimmed projection for the storefront.
type PublicProductResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     *string   `json:"description,omitempty"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	Type            string    `json:"type"`
	PricePer1000    float64   `json:"pricePer1000"`
	PricePerTrolley float64   `json:"pricePerTrolley"`
	UsageTags       []string  `json:"usageTags"`
	QualityGrade    string    `json:"qualityGrade"`
	Availability    bool      `json:"availability"`
}
