package service

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"brickworks_backend/internal/events"
	"brickworks_backend/internal/reviews/repository"
	"brickworks_backend/internal/reviews/transport"
	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/sanitize"
)

// Service provides business logic for customer reviews.
type Service struct {
	repo repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

// New creates a new reviews service.
func New(repo repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

// Submit stores a public review as pending approval.
func (s *Service) Submit(ctx context.Context, req transport.SubmitReviewRequest) (transport.ReviewResponse, error) {
	comment := strings.TrimSpace(sanitize.Text(req.Comment))
	if comment == "" {
		return transport.ReviewResponse{}, apperr.Validation("review text is required")
	}

	review, err := s.repo.Create(ctx, repository.CreateParams{
		Rating:   req.Rating,
		Comment:  comment,
		Name:     sanitize.TextPtr(req.Name),
		Location: sanitize.TextPtr(req.Location),
	})
	if err != nil {
		return transport.ReviewResponse{}, apperr.Wrap(apperr.KindInternal, "failed to save review", err)
	}

	s.log.Info("review submitted", "reviewId", review.ID, "rating", review.Rating)
	return toResponse(review), nil
}

// ListApproved returns the public review list.
func (s *Service) ListApproved(ctx context.Context) ([]transport.ReviewResponse, error) {
	reviews, err := s.repo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(reviews), nil
}

// ListAll returns every review for the admin portal.
func (s *Service) ListAll(ctx context.Context) ([]transport.ReviewResponse, error) {
	reviews, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(reviews), nil
}

// Approve marks a review approved and publishes ReviewChanged.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (transport.ReviewResponse, error) {
	return s.setApproval(ctx, id, true, "approved")
}

// Disapprove moves a review back to pending and publishes ReviewChanged.
func (s *Service) Disapprove(ctx context.Context, id uuid.UUID) (transport.ReviewResponse, error) {
	return s.setApproval(ctx, id, false, "disapproved")
}

// Delete removes a review and publishes ReviewChanged.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (transport.ReviewResponse, error) {
	review, err := s.repo.Delete(ctx, id)
	if err != nil {
		return transport.ReviewResponse{}, err
	}

	s.bus.Publish(ctx, events.ReviewChanged{
		BaseEvent: events.NewBaseEvent(),
		ReviewID:  review.ID,
		Change:    "deleted",
	})

	s.log.Info("review deleted", "reviewId", review.ID)
	return toResponse(review), nil
}

// Summary returns the approved-set aggregate with the average rounded to one
// decimal place.
func (s *Service) Summary(ctx context.Context) (transport.SummaryResponse, error) {
	summary, err := s.repo.Summary(ctx)
	if err != nil {
		return transport.SummaryResponse{}, err
	}
	return transport.SummaryResponse{
		AverageRating:        RoundRating(summary.AverageRating),
		TotalApprovedReviews: summary.TotalApproved,
	}, nil
}

// RoundRating rounds an average rating to one decimal place.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

func (s *Service) setApproval(ctx context.Context, id uuid.UUID, approved bool, change string) (transport.ReviewResponse, error) {
	review, err := s.repo.SetApproval(ctx, id, approved)
	if err != nil {
		return transport.ReviewResponse{}, err
	}

	s.bus.Publish(ctx, events.ReviewChanged{
		BaseEvent: events.NewBaseEvent(),
		ReviewID:  review.ID,
		Change:    change,
	})

	s.log.Info("review approval changed", "reviewId", review.ID, "status", review.Status)
	return toResponse(review), nil
}

func toResponses(reviews []repository.Review) []transport.ReviewResponse {
	results := make([]transport.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		results = append(results, toResponse(r))
	}
	return results
}

func toResponse(r repository.Review) transport.ReviewResponse {
	return transport.ReviewResponse{
		ID:         r.ID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Name:       r.Name,
		Location:   r.Location,
		Status:     r.Status,
		IsApproved: r.IsApproved,
		CreatedAt:  r.CreatedAt,
	}
}
