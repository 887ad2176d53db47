package repository

import (
	"context"

	"github.com/google/uuid"
)

// Entry is one append-only audit record of an admin action.
type Entry struct {
	ID         uuid.UUID              `db:"id"`
	ActionType string                 `db:"action_type"`
	EntityType string                 `db:"entity_type"`
	EntityID   *string                `db:"entity_id"`
	Message    string                 `db:"message"`
	ActorID    *string                `db:"actor_id"`
	ActorName  string                 `db:"actor_name"`
	ActorRole  string                 `db:"actor_role"`
	Metadata   map[string]interface{} `db:"metadata"`
	CreatedAt  string                 `db:"created_at"`
}

// CreateParams contains parameters for recording an entry.
type CreateParams struct {
	ActionType string
	EntityType string
	EntityID   *string
	Message    string
	ActorID    *string
	ActorName  string
	ActorRole  string
	Metadata   map[string]interface{}
}

// Repository provides access to the activity log.
type Repository interface {
	Create(ctx context.Context, params CreateParams) error
	List(ctx context.Context, limit int) ([]Entry, error)
}
