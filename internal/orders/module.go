// Package orders provides the smart-order intake bounded context module:
// the public submission pipeline and the admin order book.
package orders

import (
	"brickworks_backend/internal/events"
	apphttp "brickworks_backend/internal/http"
	"brickworks_backend/internal/orders/handler"
	"brickworks_backend/internal/orders/repository"
	"brickworks_backend/internal/orders/service"
	"brickworks_backend/platform/config"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the orders bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the orders module with all its dependencies.
func NewModule(pool *pgxpool.Pool, stock service.StockReader, cfg config.BusinessConfig, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, stock, cfg, bus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc, repo: repo}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "orders"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access (dashboard, analytics).
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts order routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/orders", m.handler.Submit)

	adminGroup := ctx.Admin.Group("/orders")
	adminGroup.GET("", m.handler.List)
	adminGroup.PUT("/:id", m.handler.Update)
	adminGroup.DELETE("/:id", ctx.SuperAdminOnly, m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
