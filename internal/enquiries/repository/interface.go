package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Enquiry represents a customer contact request.
type Enquiry struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Message   string
	Status    string
	Notes     *string
	CreatedAt string
}

// CreateParams contains the fields needed to create an enquiry.
type CreateParams struct {
	Name    string
	Phone   string
	Message string
}

// UpdateParams contains the admin-editable fields; nil fields are unchanged.
type UpdateParams struct {
	ID     uuid.UUID
	Status *string
	Notes  *string
}

// Repository defines data access for enquiries.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Enquiry, error)
	List(ctx context.Context, limit int) ([]Enquiry, error)
	Update(ctx context.Context, params UpdateParams) (Enquiry, error)
	Delete(ctx context.Context, id uuid.UUID) (Enquiry, error)
	CountAll(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)

	// PeakTimeBucket returns the busiest part of the business day
	// (Morning, Afternoon, or Evening), or "N/A" with no enquiries.
	PeakTimeBucket(ctx context.Context) (string, error)
}
