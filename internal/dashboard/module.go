// Package dashboard provides the admin overview-stats module.
package dashboard

import (
	"brickworks_backend/internal/dashboard/handler"
	"brickworks_backend/internal/dashboard/service"
	apphttp "brickworks_backend/internal/http"
	ordersrepo "brickworks_backend/internal/orders/repository"
	"brickworks_backend/platform/logger"
)

// Module is the dashboard module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the dashboard module from the sibling modules it reads.
func NewModule(products service.ProductCounter, enquiries service.EnquiryCounter, orders ordersrepo.OrderReader, stock service.StockReader, log *logger.Logger) *Module {
	svc := service.New(products, enquiries, orders, stock, log)
	return &Module{handler: handler.New(svc)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "dashboard"
}

// RegisterRoutes mounts the dashboard route on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Admin.GET("/stats", m.handler.Stats)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
