// Package token issues admin session JWTs.
package token

import (
	"time"

	"brickworks_backend/platform/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issue signs a session token carrying the user's identity claims.
func Issue(cfg config.AuthConfig, userID uuid.UUID, role, name, email string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"role":  role,
		"name":  name,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(cfg.GetSessionTTL()).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(cfg.GetJWTSecret()))
}
