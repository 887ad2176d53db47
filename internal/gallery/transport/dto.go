package transport

import "github.com/google/uuid"

// UpdateItemRequest contains the editable gallery metadata.
type UpdateItemRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=300"`
}

// ItemResponse represents a gallery item in API responses.
type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	MediaURL    string    `json:"mediaUrl"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}
