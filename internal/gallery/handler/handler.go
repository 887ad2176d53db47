package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brickworks_backend/internal/gallery/service"
	"brickworks_backend/internal/gallery/transport"
	"brickworks_backend/platform/httpkit"
	"brickworks_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "valid gallery item ID is required"
)

// Handler handles HTTP requests for the gallery.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new gallery handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// List returns all gallery items.
// GET /api/v1/gallery and GET /api/v1/admin/gallery
func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKCount(c, items, len(items))
}

// Upload stores gallery media from a multipart form with fields
// type, title, description, and file.
// POST /api/v1/admin/gallery
func (h *Handler) Upload(c *gin.Context) {
	mediaType := c.PostForm("type")
	if mediaType == "" {
		httpkit.Error(c, http.StatusBadRequest, "media type and file are required", nil)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "media type and file are required", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "failed to read uploaded file", nil)
		return
	}
	defer file.Close()

	item, err := h.svc.Upload(c.Request.Context(), mediaType,
		formValue(c, "title"), formValue(c, "description"), file, header)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, "Media uploaded successfully", item)
}

// Update applies metadata edits to a gallery item.
// PUT /api/v1/admin/gallery/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKWithMessage(c, "Gallery item updated successfully", item)
}

// Delete removes a gallery item and its stored media.
// DELETE /api/v1/admin/gallery/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	item, err := h.svc.Delete(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKWithMessage(c, "Gallery item deleted successfully", item)
}

func formValue(c *gin.Context, field string) *string {
	value := strings.TrimSpace(c.PostForm(field))
	if value == "" {
		return nil
	}
	return &value
}
