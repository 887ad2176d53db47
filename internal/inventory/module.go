// Package inventory provides the stock snapshot bounded context module.
// The storefront shows the latest snapshot; admins update it in place.
package inventory

import (
	activitylog "brickworks_backend/internal/activitylog/service"
	"brickworks_backend/internal/events"
	apphttp "brickworks_backend/internal/http"
	"brickworks_backend/internal/inventory/handler"
	"brickworks_backend/internal/inventory/repository"
	"brickworks_backend/internal/inventory/service"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the inventory bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the inventory module with all its dependencies.
func NewModule(pool *pgxpool.Pool, audit *activitylog.Service, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, audit, bus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc, repo: repo}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "inventory"
}

// Service returns the service layer for external use (order stock checks).
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts inventory routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/inventory", m.handler.Get)
	ctx.Admin.PUT("/inventory", m.handler.Update)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
