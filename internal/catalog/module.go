// Package catalog provides the product catalog bounded context module:
// the public storefront list and stream plus the admin product CRUD.
package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	activitylog "brickworks_backend/internal/activitylog/service"
	"brickworks_backend/internal/catalog/handler"
	"brickworks_backend/internal/catalog/repository"
	"brickworks_backend/internal/catalog/service"
	"brickworks_backend/internal/events"
	apphttp "brickworks_backend/internal/http"
	"brickworks_backend/internal/storage"
	"brickworks_backend/internal/stream"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/validator"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
	hub     *stream.Hub
}

// NewModule creates and initializes the catalog module. store may be nil when
// object storage is not configured.
func NewModule(pool *pgxpool.Pool, store storage.Service, imageBucket string, audit *activitylog.Service, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, store, imageBucket, audit, bus, log)
	h := handler.New(svc, val)

	hub := stream.NewHub("products", log, func() interface{} {
		products, err := svc.ListPublic(context.Background())
		if err != nil {
			log.Error("failed to build product stream snapshot", "error", err)
			return nil
		}
		return products
	})

	m := &Module{handler: h, service: svc, repo: repo, hub: hub}
	m.subscribe(bus, log)
	return m
}

// subscribe rebroadcasts the public catalog to stream subscribers after any
// product mutation.
func (m *Module) subscribe(bus events.Bus, log *logger.Logger) {
	rebroadcast := events.HandlerFunc(func(ctx context.Context, _ events.Event) error {
		products, err := m.service.ListPublic(ctx)
		if err != nil {
			return err
		}
		m.hub.Broadcast(stream.Event{Name: "products", Data: products})
		return nil
	})

	bus.Subscribe(events.ProductChanged{}.EventName(), rebroadcast)
	bus.Subscribe(events.PriceChanged{}.EventName(), rebroadcast)
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use (seeding, dashboard).
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access (dashboard).
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// Close disconnects all stream subscribers.
func (m *Module) Close() {
	m.hub.Close()
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/products", m.handler.ListPublic)
	ctx.V1.GET("/products/stream", m.hub.Handler())

	adminGroup := ctx.Admin.Group("/products")
	adminGroup.GET("", m.handler.ListAdmin)
	adminGroup.POST("", m.handler.Create)
	adminGroup.GET("/:id", m.handler.Get)
	adminGroup.PUT("/:id", m.handler.Update)
	adminGroup.DELETE("/:id", m.handler.Archive)
	adminGroup.PATCH("/:id/restore", m.handler.Restore)
	adminGroup.PATCH("/:id/toggle-active", m.handler.ToggleActive)
	adminGroup.PUT("/:id/pricing", m.handler.UpdatePricing)
	adminGroup.PUT("/:id/image", m.handler.UploadImage)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
