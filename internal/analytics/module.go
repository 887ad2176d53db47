// Package analytics provides the interaction-counter and business-stats module.
package analytics

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"brickworks_backend/internal/analytics/handler"
	"brickworks_backend/internal/analytics/repository"
	"brickworks_backend/internal/analytics/service"
	apphttp "brickworks_backend/internal/http"
	ordersrepo "brickworks_backend/internal/orders/repository"
	"brickworks_backend/platform/config"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/validator"
)

// Module is the analytics bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the analytics module. The orders and
// enquiries dependencies feed the derived business metrics.
func NewModule(pool *pgxpool.Pool, orders ordersrepo.OrderReader, enquiries service.EnquiryStats, cfg config.BusinessConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, orders, enquiries, cfg, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "analytics"
}

// RegisterRoutes mounts analytics routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/analytics/track",
		ctx.Limiters.Analytics.RateLimit("too many analytics events, try again later"),
		m.handler.Track)

	ctx.Admin.GET("/analytics", m.handler.AdminStats)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
