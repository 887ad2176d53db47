package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Order is a persisted smart-order lead. Legacy mirror columns (FullName,
// MobileNumber, CustomerName, Phone, Address, Product, Quantity) duplicate
// canonical fields for older admin clients.
type Order struct {
	ID                   uuid.UUID `db:"id"`
	Name                 string    `db:"name"`
	PhoneNumber          string    `db:"phone_number"`
	Email                string    `db:"email"`
	WhatsAppNumber       string    `db:"whatsapp_number"`
	IsWhatsAppSame       bool      `db:"is_whatsapp_same"`
	BrickType            string    `db:"brick_type"`
	UsagePurpose         string    `db:"usage_purpose"`
	QuantityUnit         string    `db:"quantity_unit"`
	QuantityBricks       int64     `db:"quantity_bricks"`
	QuantityTrolleys     float64   `db:"quantity_trolleys"`
	Quantity             int64     `db:"quantity"`
	DeliveryArea         string    `db:"delivery_area"`
	Landmark             *string   `db:"landmark"`
	DistanceRange        string    `db:"distance_range"`
	RequiredDeliveryDate time.Time `db:"required_delivery_date"`
	Urgency              string    `db:"urgency"`
	LeadPriority         string    `db:"lead_priority"`
	Notes                *string   `db:"notes"`
	Status               string    `db:"status"`
	WhatsAppMessageURL   *string   `db:"whatsapp_message_url"`
	FullName             *string   `db:"full_name"`
	MobileNumber         *string   `db:"mobile_number"`
	CustomerName         *string   `db:"customer_name"`
	Phone                *string   `db:"phone"`
	Address              *string   `db:"address"`
	Product              *string   `db:"product"`
	TotalPrice           *float64  `db:"total_price"`
	CreatedAt            string    `db:"created_at"`
	UpdatedAt            string    `db:"updated_at"`
}

// CreateParams contains every raw and derived field persisted at intake.
type CreateParams struct {
	Name                 string
	PhoneNumber          string
	Email                string
	WhatsAppNumber       string
	IsWhatsAppSame       bool
	BrickType            string
	UsagePurpose         string
	QuantityUnit         string
	QuantityBricks       int64
	QuantityTrolleys     float64
	DeliveryArea         string
	Landmark             *string
	DistanceRange        string
	RequiredDeliveryDate time.Time
	Urgency              string
	LeadPriority         string
	WhatsAppMessageURL   string
	TotalPrice           float64
}

// UpdateParams contains the admin-editable fields.
type UpdateParams struct {
	ID     uuid.UUID
	Status *string
	Notes  *string
}

// BrickTypeStat is the most-ordered aggregation result: total bricks and
// order count for one grade, cancelled orders excluded.
type BrickTypeStat struct {
	BrickType   string
	TotalBricks int64
	Orders      int64
}

// OrderReader provides read operations for orders.
type OrderReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (Order, error)
	List(ctx context.Context, limit int) ([]Order, error)
	CountAll(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountWithStatuses(ctx context.Context, statuses []string) (int64, error)
	MostOrderedBrickType(ctx context.Context) (BrickTypeStat, error)
	AverageQuantity(ctx context.Context) (float64, error)
}

// OrderWriter provides write operations for orders.
type OrderWriter interface {
	Create(ctx context.Context, params CreateParams) (Order, error)
	Update(ctx context.Context, params UpdateParams) (Order, error)
	Delete(ctx context.Context, id uuid.UUID) (Order, error)
}

// Repository combines all order repository operations.
type Repository interface {
	OrderReader
	OrderWriter
}
