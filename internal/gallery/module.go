// Package gallery provides the media gallery bounded context module:
// the public media list and stream plus admin upload and moderation.
package gallery

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"brickworks_backend/internal/events"
	"brickworks_backend/internal/gallery/handler"
	"brickworks_backend/internal/gallery/repository"
	"brickworks_backend/internal/gallery/service"
	apphttp "brickworks_backend/internal/http"
	"brickworks_backend/internal/storage"
	"brickworks_backend/internal/stream"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/validator"
)

// Module is the gallery bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	hub     *stream.Hub
}

// NewModule creates and initializes the gallery module. store may be nil when
// object storage is not configured.
func NewModule(pool *pgxpool.Pool, store storage.Service, bucket string, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, store, bucket, bus, log)
	h := handler.New(svc, val)

	hub := stream.NewHub("gallery", log, func() interface{} {
		items, err := svc.List(context.Background())
		if err != nil {
			log.Error("failed to build gallery stream snapshot", "error", err)
			return nil
		}
		return items
	})

	m := &Module{handler: h, service: svc, hub: hub}
	m.subscribe(bus)
	return m
}

// subscribe rebroadcasts the media list to stream subscribers after any
// gallery mutation.
func (m *Module) subscribe(bus events.Bus) {
	bus.Subscribe(events.GalleryChanged{}.EventName(), events.HandlerFunc(
		func(ctx context.Context, _ events.Event) error {
			items, err := m.service.List(ctx)
			if err != nil {
				return err
			}
			m.hub.Broadcast(stream.Event{Name: "gallery", Data: items})
			return nil
		}))
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "gallery"
}

// Close disconnects all stream subscribers.
func (m *Module) Close() {
	m.hub.Close()
}

// RegisterRoutes mounts gallery routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/gallery", m.handler.List)
	ctx.V1.GET("/gallery/stream", m.hub.Handler())

	adminGroup := ctx.Admin.Group("/gallery")
	adminGroup.GET("", m.handler.List)
	adminGroup.POST("", m.handler.Upload)
	adminGroup.PUT("/:id", m.handler.Update)
	adminGroup.DELETE("/:id", m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
