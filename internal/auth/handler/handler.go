package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brickworks_backend/internal/auth/service"
	"brickworks_backend/internal/auth/transport"
	"brickworks_backend/platform/config"
	"brickworks_backend/platform/httpkit"
	"brickworks_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for admin authentication.
type Handler struct {
	svc *service.Service
	cfg config.AuthConfig
	val *validator.Validator
}

// New creates a new auth handler.
func New(svc *service.Service, cfg config.AuthConfig, val *validator.Validator) *Handler {
	return &Handler{svc: svc, cfg: cfg, val: val}
}

// Login authenticates an admin and sets the session cookie.
// POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	user, signed, err := h.svc.Login(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	h.setSessionCookie(c, signed, int(h.cfg.GetSessionTTL().Seconds()))
	httpkit.OK(c, transport.LoginResponse{User: user})
}

// Logout clears the session cookie.
// POST /api/v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	httpkit.OKMessage(c, "logged out")
}

// Me returns the authenticated admin's profile.
// GET /api/v1/auth/me
func (h *Handler) Me(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	user, err := h.svc.Me(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, user)
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(h.cfg.GetAuthCookieSameSite())
	c.SetCookie(
		h.cfg.GetAuthCookieName(),
		value,
		maxAge,
		"/",
		"",
		h.cfg.GetAuthCookieSecure(),
		true, // HTTP-only
	)
}
