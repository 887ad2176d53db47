package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	activitylog "brickworks_backend/internal/activitylog/service"
	"brickworks_backend/internal/catalog/service"
	"brickworks_backend/internal/catalog/transport"
	"brickworks_backend/platform/httpkit"
	"brickworks_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "valid product ID is required"
)

// Handler handles HTTP requests for the product catalog.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new catalog handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ListPublic returns the storefront catalog.
// GET /api/v1/products
func (h *Handler) ListPublic(c *gin.Context) {
	products, err := h.svc.ListPublic(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKCount(c, products, len(products))
}

// ListAdmin returns all products for the admin portal.
// GET /api/v1/admin/products?includeArchived=
func (h *Handler) ListAdmin(c *gin.Context) {
	includeArchived := c.Query("includeArchived") == "true"

	products, err := h.svc.ListAdmin(c.Request.Context(), includeArchived)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKCount(c, products, len(products))
}

// Get returns a single product.
// GET /api/v1/admin/products/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	product, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, product)
}

// Create adds a new product.
// POST /api/v1/admin/products
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	product, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, "Product created successfully", product)
}

// Update applies partial edits to a product.
// PUT /api/v1/admin/products/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	actor, ok := requestActor(c)
	if !ok {
		return
	}

	product, err := h.svc.Update(c.Request.Context(), id, req, actor)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKWithMessage(c, "Product updated successfully", product)
}

// ToggleActive flips a product's active flag.
// PATCH /api/v1/admin/products/:id/toggle-active
func (h *Handler) ToggleActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	product, err := h.svc.ToggleActive(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	message := "Product deactivated successfully"
	if product.IsActive {
		message = "Product activated successfully"
	}
	httpkit.OKWithMessage(c, message, product)
}

// Archive soft-deletes a product.
// DELETE /api/v1/admin/products/:id
func (h *Handler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
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

	product, err := h.svc.Archive(c.Request.Context(), id, actor, identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKWithMessage(c, "Product archived successfully", product)
}

// Restore reverses a product archive.
// PATCH /api/v1/admin/products/:id/restore
func (h *Handler) Restore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	actor, ok := requestActor(c)
	if !ok {
		return
	}

	product, err := h.svc.Restore(c.Request.Context(), id, actor)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKWithMessage(c, "Product restored successfully", product)
}

// UpdatePricing is the legacy pricing-only endpoint.
// PUT /api/v1/admin/products/:id/pricing
func (h *Handler) UpdatePricing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	actor, ok := requestActor(c)
	if !ok {
		return
	}

	product, err := h.svc.UpdatePricing(c.Request.Context(), id, req, actor)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKWithMessage(c, "Product pricing updated successfully", product)
}

// UploadImage stores a product image from a multipart form.
// PUT /api/v1/admin/products/:id/image
func (h *Handler) UploadImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "image file is required", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "failed to read uploaded file", nil)
		return
	}
	defer file.Close()

	product, err := h.svc.UploadImage(c.Request.Context(), id, file, header)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OKWithMessage(c, "Product image uploaded successfully", product)
}

func requestActor(c *gin.Context) (activitylog.Actor, bool) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return activitylog.Actor{}, false
	}
	return activitylog.Actor{
		ID:   identity.UserID().String(),
		Name: identity.Name(),
		Role: identity.Role(),
	}, true
}
