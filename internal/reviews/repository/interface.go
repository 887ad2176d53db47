package repository

import (
	"context"

	"github.com/google/uuid"
)

// Review represents one piece of customer feedback.
type Review struct {
	ID         uuid.UUID
	Rating     int
	Comment    string
	Name       *string
	Location   *string
	Status     string
	IsApproved bool
	CreatedAt  string
	UpdatedAt  string
}

// CreateParams contains the fields needed to create a review.
type CreateParams struct {
	Rating   int
	Comment  string
	Name     *string
	Location *string
}

// Summary aggregates the approved review set.
type Summary struct {
	AverageRating float64
	TotalApproved int64
}

// Repository defines data access for reviews.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (Review, error)
	ListApproved(ctx context.Context) ([]Review, error)
	ListAll(ctx context.Context) ([]Review, error)

	// SetApproval moves a review between approved and pending, keeping the
	// status enum and the legacy isApproved flag synchronized.
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (Review, error)

	Delete(ctx context.Context, id uuid.UUID) (Review, error)
	Summary(ctx context.Context) (Summary, error)
}
