package repository

import (
	"context"

	"github.com/google/uuid"
)

// Item represents one gallery media entry.
type Item struct {
	ID          uuid.UUID
	Type        string
	Title       *string
	Description *string
	MediaURL    string
	FileKey     string
	CreatedAt   string
	UpdatedAt   string
}

// CreateParams contains the fields needed to create a gallery item.
type CreateParams struct {
	Type        string
	Title       *string
	Description *string
	MediaURL    string
	FileKey     string
}

// UpdateParams contains the editable metadata; nil fields are unchanged.
type UpdateParams struct {
	ID          uuid.UUID
	Title       *string
	Description *string
}

// Repository defines data access for gallery items.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Item, error)
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (Item, error)
	Update(ctx context.Context, params UpdateParams) (Item, error)
	Delete(ctx context.Context, id uuid.UUID) (Item, error)
}
