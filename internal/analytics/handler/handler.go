package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brickworks_backend/internal/analytics/service"
	"brickworks_backend/internal/analytics/transport"
	"brickworks_backend/platform/httpkit"
	"brickworks_backend/platform/validator"
)

// Handler handles HTTP requests for analytics.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new analytics handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Track increments a public interaction counter.
// POST /api/v1/analytics/track
func (h *Handler) Track(c *gin.Context) {
	var req transport.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "valid metricType is required", err.Error())
		return
	}

	result, err := h.svc.Track(c.Request.Context(), req.MetricType)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// AdminStats returns the interaction counters plus derived business metrics.
// GET /api/v1/admin/analytics
func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.svc.AdminStats(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, stats)
}
