package transport

import "github.com/google/uuid"

// EntryResponse represents one activity log entry in API responses.
type EntryResponse struct {
	ID         uuid.UUID              `json:"id"`
	ActionType string                 `json:"actionType"`
	EntityType string                 `json:"entityType"`
	EntityID   *string                `json:"entityId,omitempty"`
	Message    string                 `json:"message"`
	ActorID    *string                `json:"actorId,omitempty"`
	ActorName  string                 `json:"actorName"`
	ActorRole  string                 `json:"actorRole"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  string                 `json:"createdAt"`
}
