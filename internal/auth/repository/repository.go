package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brickworks_backend/platform/apperr"
)

const userNotFoundMessage = "user not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new users repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetByID retrieves a user by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	query := `
		SELECT id, name, email, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1`

	return r.scanOne(ctx, query, id)
}

// GetByEmail retrieves a user by email (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (User, error) {
	query := `
		SELECT id, name, email, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE email = $1`

	return r.scanOne(ctx, query, strings.ToLower(strings.TrimSpace(email)))
}

// CountActiveAdmins returns the number of active admin accounts.
func (r *Repo) CountActiveAdmins(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM users WHERE role IN ('admin', 'super_admin') AND is_active = true`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active admins: %w", err)
	}
	return count, nil
}

// Create inserts a new user.
func (r *Repo) Create(ctx context.Context, params CreateParams) (User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, role, is_active, created_at, updated_at`

	var u User
	var createdAt, updatedAt time.Time

	err := r.pool.QueryRow(ctx, query,
		params.Name, strings.ToLower(strings.TrimSpace(params.Email)), params.PasswordHash, params.Role,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	u.CreatedAt = createdAt.Format(time.RFC3339)
	u.UpdatedAt = updatedAt.Format(time.RFC3339)

	return u, nil
}

func (r *Repo) scanOne(ctx context.Context, query string, arg interface{}) (User, error) {
	var u User
	var createdAt, updatedAt time.Time

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.NotFound(userNotFoundMessage)
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}

	u.CreatedAt = createdAt.Format(time.RFC3339)
	u.UpdatedAt = updatedAt.Format(time.RFC3339)

	return u, nil
}
