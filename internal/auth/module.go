// Package auth provides the admin authentication bounded context module:
// cookie-based sessions, login/logout, and the middleware guarding admin routes.
package auth

import (
	"net/http"

	"brickworks_backend/internal/auth/handler"
	"brickworks_backend/internal/auth/repository"
	"brickworks_backend/internal/auth/service"
	apphttp "brickworks_backend/internal/http"
	"brickworks_backend/platform/config"
	"brickworks_backend/platform/httpkit"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	cfg     config.AuthConfig
}

// NewModule creates and initializes the auth module with all its dependencies.
func NewModule(pool *pgxpool.Pool, cfg config.AuthConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)
	h := handler.New(svc, cfg, val)

	return &Module{
		handler: h,
		service: svc,
		cfg:     cfg,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Service returns the service layer for the composition root (admin seeding).
func (m *Module) Service() *service.Service {
	return m.service
}

// CookieAuth validates the session cookie and re-checks that the account is
// still active, so disabling an admin takes effect before the token expires.
func (m *Module) CookieAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(m.cfg.GetAuthCookieName())
		if err != nil || raw == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := httpkit.ParseSessionToken(raw, m.cfg)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		if !m.service.IsActive(c.Request.Context(), claims.UserID) {
			abortUnauthorized(c)
			return
		}

		httpkit.SetIdentity(c, claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httpkit.Envelope{
		Success: false,
		Message: "unauthorized",
	})
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/auth")
	group.POST("/login", ctx.Limiters.Auth.RateLimit("too many login attempts, try again later"), m.handler.Login)
	group.POST("/logout", m.handler.Logout)
	group.GET("/me", ctx.AuthMiddleware, m.handler.Me)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
