package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brickworks_backend/internal/enquiries/service"
	"brickworks_backend/internal/enquiries/transport"
	"brickworks_backend/platform/httpkit"
	"brickworks_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "valid enquiry ID is required"
)

// Handler handles HTTP requests for enquiries.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new enquiries handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Submit accepts a public contact enquiry.
// POST /api/v1/enquiries
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	enquiry, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, "Enquiry submitted successfully", enquiry)
}

// List retrieves the newest enquiries (admin).
// GET /api/v1/admin/enquiries?limit=
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	enquiries, err := h.svc.List(c.Request.Context(), limit)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKCount(c, enquiries, len(enquiries))
}

// Update applies admin edits to an enquiry.
// PUT /api/v1/admin/enquiries/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	enquiry, err := h.svc.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKWithMessage(c, "Enquiry updated successfully", enquiry)
}

// Delete removes an enquiry (super_admin only).
// DELETE /api/v1/admin/enquiries/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	enquiry, err := h.svc.Delete(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKWithMessage(c, "Enquiry deleted successfully", enquiry)
}
