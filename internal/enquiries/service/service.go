package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"brickworks_backend/internal/enquiries/repository"
	"brickworks_backend/internal/enquiries/transport"
	"brickworks_backend/internal/events"
	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/sanitize"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Service provides business logic for customer enquiries.
type Service struct {
	repo repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

// New creates a new enquiries service.
func New(repo repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

// Submit stores a public contact enquiry and publishes EnquiryCreated.
func (s *Service) Submit(ctx context.Context, req transport.SubmitEnquiryRequest) (transport.EnquiryResponse, error) {
	enquiry, err := s.repo.Create(ctx, repository.CreateParams{
		Name:    strings.TrimSpace(sanitize.Text(req.Name)),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(sanitize.Text(req.Message)),
	})
	if err != nil {
		return transport.EnquiryResponse{}, apperr.Wrap(apperr.KindInternal, "failed to save enquiry", err)
	}

	s.bus.Publish(ctx, events.EnquiryCreated{
		BaseEvent: events.NewBaseEvent(),
		EnquiryID: enquiry.ID,
		Name:      enquiry.Name,
		Phone:     enquiry.Phone,
		Message:   enquiry.Message,
	})

	s.log.Info("enquiry submitted", "enquiryId", enquiry.ID)
	return toResponse(enquiry), nil
}

// List returns the newest enquiries. Limit is clamped to 1..500, default 100.
func (s *Service) List(ctx context.Context, limit int) ([]transport.EnquiryResponse, error) {
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	enquiries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	results := make([]transport.EnquiryResponse, 0, len(enquiries))
	for _, e := range enquiries {
		results = append(results, toResponse(e))
	}
	return results, nil
}

// Update applies admin edits (status, notes).
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateEnquiryRequest) (transport.EnquiryResponse, error) {
	var notes *string
	if req.Notes != nil {
		trimmed := strings.TrimSpace(sanitize.Text(*req.Notes))
		notes = &trimmed
	}

	enquiry, err := s.repo.Update(ctx, repository.UpdateParams{ID: id, Status: req.Status, Notes: notes})
	if err != nil {
		return transport.EnquiryResponse{}, err
	}
	return toResponse(enquiry), nil
}

// Delete removes an enquiry and returns the deleted record.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (transport.EnquiryResponse, error) {
	enquiry, err := s.repo.Delete(ctx, id)
	if err != nil {
		return transport.EnquiryResponse{}, err
	}

	s.log.Info("enquiry deleted", "enquiryId", enquiry.ID)
	return toResponse(enquiry), nil
}

// CountAll returns the total number of enquiries.
func (s *Service) CountAll(ctx context.Context) (int64, error) {
	return s.repo.CountAll(ctx)
}

// CountSince returns the number of enquiries created at or after the cutoff.
func (s *Service) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return s.repo.CountSince(ctx, since)
}

// PeakTimeBucket returns the busiest part of the business day for enquiries.
func (s *Service) PeakTimeBucket(ctx context.Context) (string, error) {
	return s.repo.PeakTimeBucket(ctx)
}

func toResponse(e repository.Enquiry) transport.EnquiryResponse {
	return transport.EnquiryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Phone:     e.Phone,
		Message:   e.Message,
		Status:    e.Status,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}
