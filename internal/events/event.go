// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"brickworks_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Orders Domain Events
// =============================================================================

// OrderCreated is published after an order is committed to the database.
type OrderCreated struct {
	BaseEvent
	OrderID        uuid.UUID `json:"orderId"`
	CustomerName   string    `json:"customerName"`
	Phone          string    `json:"phone"`
	BrickType      string    `json:"brickType"`
	QuantityBricks int64     `json:"quantityBricks"`
	DeliveryArea   string    `json:"deliveryArea"`
	LeadPriority   string    `json:"leadPriority"`
	WhatsAppURL    string    `json:"whatsappUrl"`
}

func (e OrderCreated) EventName() string { return "orders.order.created" }

// OrderStatusChanged is published when an admin moves an order through
// its fulfilment statuses.
type OrderStatusChanged struct {
	BaseEvent
	OrderID   uuid.UUID `json:"orderId"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
	ActorID   uuid.UUID `json:"actorId"`
}

func (e OrderStatusChanged) EventName() string { return "orders.order.status_changed" }

// =============================================================================
// Enquiries Domain Events
// =============================================================================

// EnquiryCreated is published when a visitor submits a contact enquiry.
type EnquiryCreated struct {
	BaseEvent
	EnquiryID uuid.UUID `json:"enquiryId"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
}

func (e EnquiryCreated) EventName() string { return "enquiries.enquiry.created" }

// =============================================================================
// Catalog Domain Events
// =============================================================================

// ProductChanged is published after any product mutation so the public
// product stream can rebroadcast the catalog.
type ProductChanged struct {
	BaseEvent
	ProductID uuid.UUID `json:"productId"`
	Change    string    `json:"change"` // "created", "updated", "archived", "restored", "toggled"
}

func (e ProductChanged) EventName() string { return "catalog.product.changed" }

// PriceChanged is published when a product's pricing is updated.
type PriceChanged struct {
	BaseEvent
	ProductID       uuid.UUID `json:"productId"`
	OldPricePer1000 float64   `json:"oldPricePer1000"`
	NewPricePer1000 float64   `json:"newPricePer1000"`
	ActorName       string    `json:"actorName"`
}

func (e PriceChanged) EventName() string { return "catalog.price.changed" }

// =============================================================================
// Inventory Domain Events
// =============================================================================

// InventoryUpdated is published when an admin updates the stock snapshot.
type InventoryUpdated struct {
	BaseEvent
	TotalBricks       int64 `json:"totalBricks"`
	AvailableTrolleys int64 `json:"availableTrolleys"`
}

func (e InventoryUpdated) EventName() string { return "inventory.snapshot.updated" }

// =============================================================================
// Reviews Domain Events
// =============================================================================

// ReviewChanged is published when the approved review set changes
// (approve, disapprove, delete), so the review stream can push a fresh summary.
type ReviewChanged struct {
	BaseEvent
	ReviewID uuid.UUID `json:"reviewId"`
	Change   string    `json:"change"` // "approved", "disapproved", "deleted"
}

func (e ReviewChanged) EventName() string { return "reviews.review.changed" }

// =============================================================================
// Gallery Domain Events
// =============================================================================

// GalleryChanged is published after any gallery mutation so the public
// gallery stream can rebroadcast the media list.
type GalleryChanged struct {
	BaseEvent
	ItemID uuid.UUID `json:"itemId"`
	Change string    `json:"change"` // "uploaded", "updated", "deleted"
}

func (e GalleryChanged) EventName() string { return "gallery.item.changed" }
