package handler

import (
	"github.com/gin-gonic/gin"

	"brickworks_backend/internal/dashboard/service"
	"brickworks_backend/platform/httpkit"
)

// Handler handles HTTP requests for the admin dashboard.
type Handler struct {
	svc *service.Service
}

// New creates a new dashboard handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Stats returns the dashboard overview counters.
// GET /api/v1/admin/stats
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, stats)
}
