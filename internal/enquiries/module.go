// Package enquiries provides the contact-enquiry bounded context module.
package enquiries

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"brickworks_backend/internal/enquiries/handler"
	"brickworks_backend/internal/enquiries/repository"
	"brickworks_backend/internal/enquiries/service"
	"brickworks_backend/internal/events"
	apphttp "brickworks_backend/internal/http"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/validator"
)

// Module is the enquiries bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the enquiries module.
func NewModule(pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, bus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc, repo: repo}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "enquiries"
}

// Service returns the service layer for external use (dashboard, analytics).
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts enquiry routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/enquiries", m.handler.Submit)

	adminGroup := ctx.Admin.Group("/enquiries")
	adminGroup.GET("", m.handler.List)
	adminGroup.PUT("/:id", m.handler.Update)
	adminGroup.DELETE("/:id", ctx.SuperAdminOnly, m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
