package service

import (
	"context"
	"fmt"

	activitylog "brickworks_backend/internal/activitylog/service"
	"brickworks_backend/internal/events"
	"brickworks_backend/internal/inventory/repository"
	"brickworks_backend/internal/inventory/transport"
	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/logger"
)

// Service provides business logic for the inventory snapshot.
type Service struct {
	repo  repository.Repository
	audit *activitylog.Service
	bus   events.Bus
	log   *logger.Logger
}

// New creates a new inventory service.
func New(repo repository.Repository, audit *activitylog.Service, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, audit: audit, bus: bus, log: log}
}

// Current returns the latest stock snapshot.
func (s *Service) Current(ctx context.Context) (transport.SnapshotResponse, error) {
	snap, err := s.repo.Latest(ctx)
	if err != nil {
		return transport.SnapshotResponse{}, err
	}
	return toResponse(snap), nil
}

// Update sets the stock levels, recording a before/after audit entry and
// publishing InventoryUpdated.
func (s *Service) Update(ctx context.Context, req transport.UpdateInventoryRequest, actor activitylog.Actor) (transport.SnapshotResponse, error) {
	if req.TotalBricks == nil || req.AvailableTrolleys == nil {
		return transport.SnapshotResponse{}, apperr.Validation("totalBricks and availableTrolleys are required")
	}

	var before *repository.Snapshot
	if prev, err := s.repo.Latest(ctx); err == nil {
		before = &prev
	}

	snap, err := s.repo.Upsert(ctx, *req.TotalBricks, *req.AvailableTrolleys)
	if err != nil {
		return transport.SnapshotResponse{}, err
	}

	metadata := map[string]interface{}{
		"after": map[string]int64{
			"totalBricks":       snap.TotalBricks,
			"availableTrolleys": snap.AvailableTrolleys,
		},
	}
	if before != nil {
		metadata["before"] = map[string]int64{
			"totalBricks":       before.TotalBricks,
			"availableTrolleys": before.AvailableTrolleys,
		}
	}
	s.audit.Record(ctx, "inventory_update", "inventory", snap.ID.String(),
		fmt.Sprintf("stock updated to %d bricks / %d trolleys", snap.TotalBricks, snap.AvailableTrolleys),
		actor, metadata)

	s.bus.Publish(ctx, events.InventoryUpdated{
		BaseEvent:         events.NewBaseEvent(),
		TotalBricks:       snap.TotalBricks,
		AvailableTrolleys: snap.AvailableTrolleys,
	})

	s.log.Info("inventory updated",
		"totalBricks", snap.TotalBricks, "availableTrolleys", snap.AvailableTrolleys)

	return toResponse(snap), nil
}

// SeedDefault inserts an empty snapshot when the inventory table has none,
// so the storefront always has something to show.
func (s *Service) SeedDefault(ctx context.Context) error {
	_, err := s.repo.Latest(ctx)
	if err == nil {
		return nil
	}
	if !apperr.Is(err, apperr.KindNotFound) {
		return err
	}

	if _, err := s.repo.Upsert(ctx, 0, 0); err != nil {
		return err
	}
	s.log.Info("seeded empty inventory snapshot")
	return nil
}

// AvailableBricks returns the current stock level, treating a missing
// snapshot as zero. Used by the order pipeline's advisory stock check.
func (s *Service) AvailableBricks(ctx context.Context) int64 {
	snap, err := s.repo.Latest(ctx)
	if err != nil {
		if !apperr.Is(err, apperr.KindNotFound) {
			s.log.Error("failed to read inventory for stock check", "error", err)
		}
		return 0
	}
	return snap.TotalBricks
}

func toResponse(s repository.Snapshot) transport.SnapshotResponse {
	return transport.SnapshotResponse{
		ID:                s.ID,
		TotalBricks:       s.TotalBricks,
		AvailableTrolleys: s.AvailableTrolleys,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
