package repository

import (
	"context"

	"github.com/google/uuid"
)

// User is an admin portal account.
type User struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    string    `db:"created_at"`
	UpdatedAt    string    `db:"updated_at"`
}

// CreateParams contains parameters for creating a user.
type CreateParams struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

// UserReader provides read operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	CountActiveAdmins(ctx context.Context) (int, error)
}

// UserWriter provides write operations for users.
type UserWriter interface {
	Create(ctx context.Context, params CreateParams) (User, error)
}

// Repository combines all user repository operations.
type Repository interface {
	UserReader
	UserWriter
}
