package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	invtransport "brickworks_backend/internal/inventory/transport"
	ordersrepo "brickworks_backend/internal/orders/repository"
	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/logger"
)

type fakeProductCounter struct {
	total     int64
	available int64
}

func (f *fakeProductCounter) CountAll(context.Context) (int64, error) { return f.total, nil }

func (f *fakeProductCounter) CountAvailable(context.Context) (int64, error) {
	return f.available, nil
}

type fakeEnquiryCounter struct {
	total    int64
	thisWeek int64
}

func (f *fakeEnquiryCounter) CountAll(context.Context) (int64, error) { return f.total, nil }

func (f *fakeEnquiryCounter) CountSince(context.Context, time.Time) (int64, error) {
	return f.thisWeek, nil
}

type fakeOrderReader struct {
	total    int64
	thisWeek int64
}

func (f *fakeOrderReader) GetByID(context.Context, uuid.UUID) (ordersrepo.Order, error) {
	return ordersrepo.Order{}, nil
}

func (f *fakeOrderReader) List(context.Context, int) ([]ordersrepo.Order, error) {
	return nil, nil
}

func (f *fakeOrderReader) CountAll(context.Context) (int64, error) { return f.total, nil }

func (f *fakeOrderReader) CountSince(context.Context, time.Time) (int64, error) {
	return f.thisWeek, nil
}

func (f *fakeOrderReader) CountByStatus(context.Context, string) (int64, error) { return 0, nil }

func (f *fakeOrderReader) CountWithStatuses(context.Context, []string) (int64, error) {
	return 0, nil
}

func (f *fakeOrderReader) MostOrderedBrickType(context.Context) (ordersrepo.BrickTypeStat, error) {
	return ordersrepo.BrickTypeStat{}, nil
}

func (f *fakeOrderReader) AverageQuantity(context.Context) (float64, error) { return 0, nil }

type fakeStockReader struct {
	snapshot invtransport.SnapshotResponse
	err      error
}

func (f *fakeStockReader) Current(context.Context) (invtransport.SnapshotResponse, error) {
	return f.snapshot, f.err
}

func TestStatsAssemblesCounters(t *testing.T) {
	svc := New(
		&fakeProductCounter{total: 3, available: 2},
		&fakeEnquiryCounter{total: 40, thisWeek: 5},
		&fakeOrderReader{total: 18, thisWeek: 2},
		&fakeStockReader{snapshot: invtransport.SnapshotResponse{TotalBricks: 90000, AvailableTrolleys: 30}},
		logger.New("test"),
	)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Products.Total != 3 || stats.Products.Available != 2 {
		t.Fatalf("unexpected product stats: %+v", stats.Products)
	}
	if stats.Enquiries.Total != 40 || stats.Enquiries.ThisWeek != 5 {
		t.Fatalf("unexpected enquiry stats: %+v", stats.Enquiries)
	}
	if stats.Orders.Total != 18 || stats.Orders.ThisWeek != 2 {
		t.Fatalf("unexpected order stats: %+v", stats.Orders)
	}
	if stats.Inventory.TotalBricks != 90000 || stats.Inventory.AvailableTrolleys != 30 {
		t.Fatalf("unexpected inventory stats: %+v", stats.Inventory)
	}
}

func TestStatsTreatsMissingInventoryAsZero(t *testing.T) {
	svc := New(
		&fakeProductCounter{},
		&fakeEnquiryCounter{},
		&fakeOrderReader{},
		&fakeStockReader{err: apperr.NotFound("inventory not configured")},
		logger.New("test"),
	)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Inventory.TotalBricks != 0 || stats.Inventory.AvailableTrolleys != 0 {
		t.Fatalf("expected zero inventory, got %+v", stats.Inventory)
	}
}
