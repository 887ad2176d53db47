package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"brickworks_backend/internal/auth/password"
	"brickworks_backend/internal/auth/repository"
	"brickworks_backend/internal/auth/token"
	"brickworks_backend/internal/auth/transport"
	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/config"
	"brickworks_backend/platform/logger"
)

const invalidCredentialsMessage = "invalid email or password"

// Service provides admin authentication business logic.
type Service struct {
	repo repository.Repository
	cfg  config.AuthConfig
	log  *logger.Logger
}

// New creates a new auth service.
func New(repo repository.Repository, cfg config.AuthConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log}
}

// Login verifies credentials and returns the user plus a signed session token.
// A generic error hides whether the email exists.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.UserResponse, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		s.log.AuthEvent("login", email, false, "unknown email")
		return transport.UserResponse{}, "", apperr.Unauthorized(invalidCredentialsMessage)
	}

	if !password.Compare(user.PasswordHash, req.Password) {
		s.log.AuthEvent("login", email, false, "wrong password")
		return transport.UserResponse{}, "", apperr.Unauthorized(invalidCredentialsMessage)
	}

	if !user.IsActive {
		s.log.AuthEvent("login", email, false, "account disabled")
		return transport.UserResponse{}, "", apperr.Forbidden("account is disabled")
	}

	signed, err := token.Issue(s.cfg, user.ID, user.Role, user.Name, user.Email, time.Now())
	if err != nil {
		return transport.UserResponse{}, "", apperr.Wrap(apperr.KindInternal, "failed to issue session token", err)
	}

	s.log.AuthEvent("login", email, true, "")
	return toUserResponse(user), signed, nil
}

// Me returns the current user's profile.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (transport.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return transport.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// IsActive reports whether the account still exists and is enabled. The auth
// middleware calls this on every admin request so a disabled account loses
// access before its token expires.
func (s *Service) IsActive(ctx context.Context, userID uuid.UUID) bool {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return false
	}
	return user.IsActive
}

// SeedAdmin creates the configured admin account when no active admin exists.
func (s *Service) SeedAdmin(ctx context.Context) error {
	count, err := s.repo.CountActiveAdmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := s.cfg.GetAdminSeedEmail()
	pass := s.cfg.GetAdminSeedPassword()
	if email == "" || pass == "" {
		s.log.Warn("no admin account exists and ADMIN_EMAIL/ADMIN_PASSWORD are not set")
		return nil
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return err
	}

	user, err := s.repo.Create(ctx, repository.CreateParams{
		Name:         s.cfg.GetAdminSeedName(),
		Email:        email,
		PasswordHash: hash,
		Role:         "super_admin",
	})
	if err != nil {
		return err
	}

	s.log.Info("seeded admin account", "email", user.Email, "role", user.Role)
	return nil
}

func toUserResponse(u repository.User) transport.UserResponse {
	return transport.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
