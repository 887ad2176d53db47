package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	activitylog "brickworks_backend/internal/activitylog/service"
	"brickworks_backend/internal/inventory/service"
	"brickworks_backend/internal/inventory/transport"
	"brickworks_backend/platform/httpkit"
	"brickworks_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for inventory.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new inventory handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Get returns the current stock snapshot (public).
// GET /api/v1/inventory
func (h *Handler) Get(c *gin.Context) {
	snap, err := h.svc.Current(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, snap)
}

// Update sets the stock levels (admin).
// PUT /api/v1/admin/inventory
func (h *Handler) Update(c *gin.Context) {
	var req transport.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	actor := activitylog.Actor{
		ID:   identity.UserID().String(),
		Name: identity.Name(),
		Role: identity.Role(),
	}

	snap, err := h.svc.Update(c.Request.Context(), req, actor)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, snap)
}
