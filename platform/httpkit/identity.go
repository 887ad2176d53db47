// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the authenticated admin's identity.
// This interface abstracts identity extraction from the web framework,
// allowing handlers to access user information without depending on Gin.
type Identity interface {
	// UserID returns the authenticated user's ID.
	UserID() uuid.UUID
	// Role returns the user's role.
	Role() string
	// Name returns the user's display name.
	Name() string
	// Email returns the user's email address.
	Email() string
	// IsAuthenticated returns true if the user is authenticated.
	IsAuthenticated() bool
}

// identity is the concrete implementation of Identity.
type identity struct {
	userID        uuid.UUID
	role          string
	name          string
	email         string
	authenticated bool
}

func (i *identity) UserID() uuid.UUID { return i.userID }

func (i *identity) Role() string { return i.role }

func (i *identity) Name() string { return i.name }

func (i *identity) Email() string { return i.email }

func (i *identity) IsAuthenticated() bool { return i.authenticated }

// SetIdentity stores the authenticated user's claims on the Gin context.
func SetIdentity(c *gin.Context, claims *SessionClaims) {
	c.Set(ContextUserIDKey, claims.UserID)
	c.Set(ContextRoleKey, claims.Role)
	c.Set(ContextUserNameKey, claims.Name)
	c.Set(ContextUserEmailKey, claims.Email)
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	userID, userOK := c.Get(ContextUserIDKey)
	if !userOK {
		return &identity{authenticated: false}
	}

	uid, ok := userID.(uuid.UUID)
	if !ok {
		return &identity{authenticated: false}
	}

	role, _ := c.Get(ContextRoleKey)
	name, _ := c.Get(ContextUserNameKey)
	email, _ := c.Get(ContextUserEmailKey)

	roleStr, _ := role.(string)
	nameStr, _ := name.(string)
	emailStr, _ := email.(string)

	return &identity{
		userID:        uid,
		role:          roleStr,
		name:          nameStr,
		email:         emailStr,
		authenticated: true,
	}
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the user is not authenticated, it aborts with 401 Unauthorized and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Success: false, Message: "unauthorized"})
		return nil
	}
	return id
}
