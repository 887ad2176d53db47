package service

import (
	"context"

	"brickworks_backend/internal/activitylog/repository"
	"brickworks_backend/internal/activitylog/transport"
	"brickworks_backend/platform/logger"
)

const (
	defaultLimit = 30
	maxLimit     = 100
)

// Actor identifies who performed an audited action.
type Actor struct {
	ID   string
	Name string
	Role string
}

// SystemActor is used for actions not attributable to a logged-in admin.
var SystemActor = Actor{Name: "system", Role: "system"}

// Service provides business logic for the activity log.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new activity log service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Record appends an audit entry. Failures are logged and swallowed: audit
// logging must never fail the operation it documents.
func (s *Service) Record(ctx context.Context, actionType, entityType, entityID, message string, actor Actor, metadata map[string]interface{}) {
	var entityIDPtr, actorIDPtr *string
	if entityID != "" {
		entityIDPtr = &entityID
	}
	if actor.ID != "" {
		actorIDPtr = &actor.ID
	}

	err := s.repo.Create(ctx, repository.CreateParams{
		ActionType: actionType,
		EntityType: entityType,
		EntityID:   entityIDPtr,
		Message:    message,
		ActorID:    actorIDPtr,
		ActorName:  actor.Name,
		ActorRole:  actor.Role,
		Metadata:   metadata,
	})
	if err != nil {
		s.log.Error("failed to record activity log entry",
			"action", actionType, "entity", entityType, "error", err)
	}
}

// List returns the newest entries. Limit is clamped to 1..100, default 30.
func (s *Service) List(ctx context.Context, limit int) ([]transport.EntryResponse, error) {
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	results := make([]transport.EntryResponse, 0, len(entries))
	for _, e := range entries {
		results = append(results, transport.EntryResponse{
			ID:         e.ID,
			ActionType: e.ActionType,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Message:    e.Message,
			ActorID:    e.ActorID,
			ActorName:  e.ActorName,
			ActorRole:  e.ActorRole,
			Metadata:   e.Metadata,
			CreatedAt:  e.CreatedAt,
		})
	}
	return results, nil
}
