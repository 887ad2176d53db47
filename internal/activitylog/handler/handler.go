package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"brickworks_backend/internal/activitylog/service"
	"brickworks_backend/platform/httpkit"
)

// Handler handles HTTP requests for the activity log.
type Handler struct {
	svc *service.Service
}

// New creates a new activity log handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// List retrieves the newest activity log entries.
// GET /api/v1/admin/activity-logs?limit=
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	entries, err := h.svc.List(c.Request.Context(), limit)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKCount(c, entries, len(entries))
}
