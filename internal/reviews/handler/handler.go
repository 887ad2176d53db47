package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brickworks_backend/internal/reviews/service"
	"brickworks_backend/internal/reviews/transport"
	"brickworks_backend/platform/httpkit"
	"brickworks_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "valid review ID is required"
)

// Handler handles HTTP requests for reviews.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new reviews handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Submit accepts a public review, pending admin approval.
// POST /api/v1/reviews
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	review, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, "Review submitted successfully and is pending approval", review)
}

// ListApproved returns the public review list.
// GET /api/v1/reviews
func (h *Handler) ListApproved(c *gin.Context) {
	reviews, err := h.svc.ListApproved(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKCount(c, reviews, len(reviews))
}

// Summary returns the approved-set aggregate.
// GET /api/v1/reviews/summary and legacy GET /api/v1/ratings/summary
func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, summary)
}

// ListAll returns every review (admin).
// GET /api/v1/admin/reviews
func (h *Handler) ListAll(c *gin.Context) {
	reviews, err := h.svc.ListAll(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKCount(c, reviews, len(reviews))
}

// Approve marks a review approved.
// PATCH /api/v1/admin/reviews/:id/approve
func (h *Handler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	review, err := h.svc.Approve(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKWithMessage(c, "Review approved", review)
}

// Disapprove moves a review back to pending.
// PATCH /api/v1/admin/reviews/:id/disapprove
func (h *Handler) Disapprove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	review, err := h.svc.Disapprove(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKWithMessage(c, "Review moved to pending", review)
}

// Delete removes a review.
// DELETE /api/v1/admin/reviews/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	review, err := h.svc.Delete(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKWithMessage(c, "Review deleted", review)
}
