package transport

import "github.com/google/uuid"

// SubmitOrderRequest is the public smart-order intake payload. Enum values
// are exact and case-sensitive.
type SubmitOrderRequest struct {
	BrickType            string  `json:"brickType" validate:"required,oneof=Avval Second Rora"`
	UsagePurpose         string  `json:"usagePurpose" validate:"required,oneof=House Boundary Filling"`
	QuantityUnit         string  `json:"quantityUnit" validate:"required,oneof=bricks trolleys"`
	QuantityValue        float64 `json:"quantityValue" validate:"required,gt=0"`
	DeliveryArea         string  `json:"deliveryArea" validate:"required,min=2,max=200"`
	Landmark             *string `json:"landmark,omitempty" validate:"omitempty,max=200"`
	DistanceRange        string  `json:"distanceRange" validate:"required,oneof=0-10km 10-25km 25+km"`
	RequiredDeliveryDate string  `json:"requiredDeliveryDate" validate:"required"`
	Urgency              string  `json:"urgency" validate:"required,oneof=immediate flexible"`
	Name                 string  `json:"name" validate:"required,min=2,max=150"`
	PhoneNumber          string  `json:"phoneNumber" validate:"required,phone"`
	Email                string  `json:"email" validate:"required,email,max=120"`
	WhatsAppNumber       string  `json:"whatsappNumber" validate:"omitempty,phone"`
	IsWhatsAppSame       bool    `json:"isWhatsappSame"`
}

// UpdateOrderRequest contains the admin-editable order fields.
type UpdateOrderRequest struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending processing confirmed in_progress dispatched delivered cancelled"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// OrderResponse represents an order in API responses, legacy mirrors included.
type OrderResponse struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	PhoneNumber          string    `json:"phoneNumber"`
	Email                string    `json:"email"`
	WhatsAppNumber       string    `json:"whatsappNumber"`
	IsWhatsAppSame       bool      `json:"isWhatsappSame"`
	BrickType            string    `json:"brickType"`
	UsagePurpose         string    `json:"usagePurpose"`
	QuantityUnit         string    `json:"quantityUnit"`
	QuantityBricks       int64     `json:"quantityBricks"`
	QuantityTrolleys     float64   `json:"quantityTrolleys"`
	Quantity             int64     `json:"quantity"`
	DeliveryArea         string    `json:"deliveryArea"`
	Landmark             *string   `json:"landmark,omitempty"`
	DistanceRange        string    `json:"distanceRange"`
	RequiredDeliveryDate string    `json:"requiredDeliveryDate"`
	Urgency              string    `json:"urgency"`
	LeadPriority         string    `json:"leadPriority"`
	Notes                *string   `json:"notes,omitempty"`
	Status               string    `json:"status"`
	WhatsAppMessageURL   *string   `json:"whatsappMessageUrl,omitempty"`
	FullName             *string   `json:"fullName,omitempty"`
	MobileNumber         *string   `json:"mobileNumber,omitempty"`
	CustomerName         *string   `json:"customerName,omitempty"`
	Phone                *string   `json:"phone,omitempty"`
	Address              *string   `json:"address,omitempty"`
	Product              *string   `json:"product,omitempty"`
	TotalPrice           *float64  `json:"totalPrice,omitempty"`
	CreatedAt            string    `json:"createdAt"`
	UpdatedAt            string    `json:"updatedAt"`
}

// StockAdvisory reports stock against the requested quantity. Advisory only:
// a limited order is still accepted.
type StockAdvisory struct {
	AvailableBricks int64 `json:"availableBricks"`
	RequestedBricks int64 `json:"requestedBricks"`
	Limited         bool  `json:"limited"`
}

// PriceEstimate is the non-binding min/max estimate for the order.
type PriceEstimate struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// SubmitOrderResponse is the intake result envelope payload.
type SubmitOrderResponse struct {
	Order            OrderResponse `json:"order"`
	LeadPriority     string        `json:"leadPriority"`
	Stock            StockAdvisory `json:"stock"`
	Estimate         PriceEstimate `json:"estimate"`
	AdminWhatsAppURL string        `json:"adminWhatsAppUrl"`
}
