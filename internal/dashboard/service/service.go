package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"brickworks_backend/internal/dashboard/transport"
	invtransport "brickworks_backend/internal/inventory/transport"
	ordersrepo "brickworks_backend/internal/orders/repository"
	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/logger"
)

const recentWindow = 7 * 24 * time.Hour

// ProductCounter is the slice of the catalog module the dashboard needs.
type ProductCounter interface {
	CountAll(ctx context.Context) (int64, error)
	CountAvailable(ctx context.Context) (int64, error)
}

// EnquiryCounter is the slice of the enquiries module the dashboard needs.
type EnquiryCounter interface {
	CountAll(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// StockReader exposes the latest inventory snapshot.
type StockReader interface {
	Current(ctx context.Context) (invtransport.SnapshotResponse, error)
}

// Service assembles the admin dashboard overview.
type Service struct {
	products  ProductCounter
	enquiries EnquiryCounter
	orders    ordersrepo.OrderReader
	stock     StockReader
	log       *logger.Logger
}

// New creates a new dashboard service.
func New(products ProductCounter, enquiries EnquiryCounter, orders ordersrepo.OrderReader, stock StockReader, log *logger.Logger) *Service {
	return &Service{products: products, enquiries: enquiries, orders: orders, stock: stock, log: log}
}

// Stats gathers the dashboard counters. The independent reads run in
// parallel; a missing inventory snapshot reports zero stock.
func (s *Service) Stats(ctx context.Context) (transport.StatsResponse, error) {
	weekAgo := time.Now().Add(-recentWindow)

	var stats transport.StatsResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Products.Total, err = s.products.CountAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Products.Available, err = s.products.CountAvailable(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Enquiries.Total, err = s.enquiries.CountAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Enquiries.ThisWeek, err = s.enquiries.CountSince(gctx, weekAgo)
		return err
	})
	g.Go(func() (err error) {
		stats.Orders.Total, err = s.orders.CountAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Orders.ThisWeek, err = s.orders.CountSince(gctx, weekAgo)
		return err
	})
	g.Go(func() error {
		snap, err := s.stock.Current(gctx)
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				return nil
			}
			return err
		}
		stats.Inventory.TotalBricks = snap.TotalBricks
		stats.Inventory.AvailableTrolleys = snap.AvailableTrolleys
		return nil
	})
	if err := g.Wait(); err != nil {
		return transport.StatsResponse{}, err
	}

	return stats, nil
}
