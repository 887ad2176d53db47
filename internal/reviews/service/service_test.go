package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"brickworks_backend/internal/events"
	"brickworks_backend/internal/reviews/repository"
	"brickworks_backend/internal/reviews/transport"
	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/logger"
)

type noopBus struct{}

func (noopBus) Publish(context.Context, events.Event)           {}
func (noopBus) PublishSync(context.Context, events.Event) error { return nil }
func (noopBus) Subscribe(string, events.Handler)                {}

type fakeReviewRepo struct {
	reviews map[uuid.UUID]repository.Review
	summary repository.Summary
}

func newFakeReviewRepo(reviews ...repository.Review) *fakeReviewRepo {
	repo := &fakeReviewRepo{reviews: make(map[uuid.UUID]repository.Review)}
	for _, r := range reviews {
		repo.reviews[r.ID] = r
	}
	return repo
}

func (f *fakeReviewRepo) Create(_ context.Context, params repository.CreateParams) (repository.Review, error) {
	r := repository.Review{
		ID:      uuid.New(),
		Rating:  params.Rating,
		Comment: params.Comment,
		Status:  "pending",
	}
	f.reviews[r.ID] = r
	return r, nil
}

func (f *fakeReviewRepo) ListApproved(context.Context) ([]repository.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepo) ListAll(context.Context) ([]repository.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepo) SetApproval(_ context.Context, id uuid.UUID, approved bool) (repository.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return repository.Review{}, apperr.NotFound("review not found")
	}
	if approved {
		r.Status = "approved"
	} else {
		r.Status = "pending"
	}
	r.IsApproved = approved
	f.reviews[id] = r
	return r, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) (repository.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return repository.Review{}, apperr.NotFound("review not found")
	}
	delete(f.reviews, id)
	return r, nil
}

func (f *fakeReviewRepo) Summary(context.Context) (repository.Summary, error) {
	return f.summary, nil
}

var _ repository.Repository = (*fakeReviewRepo)(nil)

func TestRoundRating(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{4.25, 4.3},
		{4.24, 4.2},
		{3.999, 4},
		{5, 5},
	}
	for _, tc := range cases {
		if got := RoundRating(tc.in); got != tc.want {
			t.Fatalf("RoundRating(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestSubmitRejectsEmptyComment(t *testing.T) {
	svc := New(newFakeReviewRepo(), noopBus{}, logger.New("test"))

	_, err := svc.Submit(context.Background(), transport.SubmitReviewRequest{Rating: 5, Comment: "   "})
	if err == nil {
		t.Fatal("expected empty comment to be rejected")
	}
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApprovalKeepsStatusAndFlagInSync(t *testing.T) {
	pending := repository.Review{ID: uuid.New(), Rating: 4, Comment: "Solid bricks", Status: "pending"}
	repo := newFakeReviewRepo(pending)
	svc := New(repo, noopBus{}, logger.New("test"))

	approved, err := svc.Approve(context.Background(), pending.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if approved.Status != "approved" || !approved.IsApproved {
		t.Fatalf("expected approved/true, got %s/%v", approved.Status, approved.IsApproved)
	}

	back, err := svc.Disapprove(context.Background(), pending.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Status != "pending" || back.IsApproved {
		t.Fatalf("expected pending/false, got %s/%v", back.Status, back.IsApproved)
	}
}

func TestSummaryRoundsAverage(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.summary = repository.Summary{AverageRating: 4.3333333, TotalApproved: 3}
	svc := New(repo, noopBus{}, logger.New("test"))

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.AverageRating != 4.3 {
		t.Fatalf("expected 4.3, got %v", summary.AverageRating)
	}
	if summary.TotalApprovedReviews != 3 {
		t.Fatalf("expected 3 approved reviews, got %d", summary.TotalApprovedReviews)
	}
}
