package transport

import "github.com/google/uuid"

// SubmitReviewRequest is the public review submission payload.
type SubmitReviewRequest struct {
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Comment  string  `json:"comment" validate:"required,min=1,max=300"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=80"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=120"`
}

// ReviewResponse represents a review in API responses.
type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Name       *string   `json:"name,omitempty"`
	Location   *string   `json:"location,omitempty"`
	Status     string    `json:"status"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  string    `json:"createdAt"`
}

// SummaryResponse aggregates the approved review set.
type SummaryResponse struct {
	AverageRating        float64 `json:"averageRating"`
	TotalApprovedReviews int64   `json:"totalApprovedReviews"`
}
