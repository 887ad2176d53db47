package transport

import "github.com/google/uuid"

// SubmitEnquiryRequest is the public contact-form payload.
type SubmitEnquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=80"`
	Phone   string `json:"phone" validate:"required,phone"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// UpdateEnquiryRequest contains the admin-editable enquiry fields.
type UpdateEnquiryRequest struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending contacted resolved cancelled"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// EnquiryResponse represents an enquiry in API responses.
type EnquiryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt string    `json:"createdAt"`
}
