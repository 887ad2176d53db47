package transport

import "github.com/google/uuid"

// UpdateInventoryRequest contains the new stock levels.
type UpdateInventoryRequest struct {
	TotalBricks       *int64 `json:"totalBricks" validate:"required,min=0"`
	AvailableTrolleys *int64 `json:"availableTrolleys" validate:"required,min=0"`
}

// SnapshotResponse represents the current stock snapshot in API responses.
type SnapshotResponse struct {
	ID                uuid.UUID `json:"id"`
	TotalBricks       int64     `json:"totalBricks"`
	AvailableTrolleys int64     `json:"availableTrolleys"`
	CreatedAt         string    `json:"createdAt"`
	UpdatedAt         string    `json:"updatedAt"`
}
