package transport

import "github.com/google/uuid"

// LoginRequest contains admin login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// UserResponse represents an admin user in API responses.
// The password hash is never exposed.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

// LoginResponse carries the authenticated user after a successful login.
// The session token travels in an HTTP-only cookie, not in the body.
type LoginResponse struct {
	User UserResponse `json:"user"`
}
