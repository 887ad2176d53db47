// Package activitylog provides the admin audit trail bounded context module.
// Other modules record entries through its service; writes are fire-and-forget.
package activitylog

import (
	"brickworks_backend/internal/activitylog/handler"
	"brickworks_backend/internal/activitylog/repository"
	"brickworks_backend/internal/activitylog/service"
	apphttp "brickworks_backend/internal/http"
	"brickworks_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the activity log bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the activity log module.
func NewModule(pool *pgxpool.Pool, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "activitylog"
}

// Service returns the service layer so other modules can record entries.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts activity log routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Admin.GET("/activity-logs", m.handler.List)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
