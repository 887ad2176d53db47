// Package reviews provides the customer review bounded context module:
// public submission and approved list, admin moderation, and the live
// summary stream.
package reviews

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"brickworks_backend/internal/events"
	apphttp "brickworks_backend/internal/http"
	"brickworks_backend/internal/reviews/handler"
	"brickworks_backend/internal/reviews/repository"
	"brickworks_backend/internal/reviews/service"
	"brickworks_backend/internal/stream"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/validator"
)

// Module is the reviews bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	hub     *stream.Hub
}

// NewModule creates and initializes the reviews module.
func NewModule(pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, bus, log)
	h := handler.New(svc, val)

	hub := stream.NewHub("reviews", log, func() interface{} {
		summary, err := svc.Summary(context.Background())
		if err != nil {
			log.Error("failed to build review stream snapshot", "error", err)
			return nil
		}
		return summary
	})

	m := &Module{handler: h, service: svc, hub: hub}
	m.subscribe(bus)
	return m
}

// subscribe pushes a fresh summary to stream subscribers whenever the
// approved review set changes.
func (m *Module) subscribe(bus events.Bus) {
	bus.Subscribe(events.ReviewChanged{}.EventName(), events.HandlerFunc(
		func(ctx context.Context, _ events.Event) error {
			summary, err := m.service.Summary(ctx)
			if err != nil {
				return err
			}
			m.hub.Broadcast(stream.Event{Name: "review_updated", Data: summary})
			return nil
		}))
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "reviews"
}

// Close disconnects all stream subscribers.
func (m *Module) Close() {
	m.hub.Close()
}

// RegisterRoutes mounts review routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	limited := ctx.Limiters.Reviews.RateLimit("too many reviews submitted, try again later")

	ctx.V1.POST("/reviews", limited, m.handler.Submit)
	ctx.V1.GET("/reviews", m.handler.ListApproved)
	ctx.V1.GET("/reviews/summary", m.handler.Summary)
	ctx.V1.GET("/reviews/stream", m.hub.Handler())

	// Legacy route kept for older storefront builds.
	ctx.V1.GET("/ratings/summary", m.handler.Summary)

	adminGroup := ctx.Admin.Group("/reviews")
	adminGroup.GET("", m.handler.ListAll)
	adminGroup.PATCH("/:id/approve", m.handler.Approve)
	adminGroup.PATCH("/:id/disapprove", m.handler.Disapprove)
	adminGroup.DELETE("/:id", m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
