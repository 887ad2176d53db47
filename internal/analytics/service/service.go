package service

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"brickworks_backend/internal/analytics/repository"
	"brickworks_backend/internal/analytics/transport"
	ordersrepo "brickworks_backend/internal/orders/repository"
	"brickworks_backend/platform/config"
	"brickworks_backend/platform/logger"
)

// fulfilledStatuses are the order statuses counted as converted business.
var fulfilledStatuses = []string{"confirmed", "dispatched", "delivered"}

// EnquiryStats is the slice of the enquiries module the analytics
// aggregation needs.
type EnquiryStats interface {
	CountAll(ctx context.Context) (int64, error)
	PeakTimeBucket(ctx context.Context) (string, error)
}

// Service provides the analytics counters and the derived admin stats.
type Service struct {
	repo      repository.Repository
	orders    ordersrepo.OrderReader
	enquiries EnquiryStats
	cfg       config.BusinessConfig
	log       *logger.Logger
}

// New creates a new analytics service.
func New(repo repository.Repository, orders ordersrepo.OrderReader, enquiries EnquiryStats, cfg config.BusinessConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, orders: orders, enquiries: enquiries, cfg: cfg, log: log}
}

// Track increments the named counter and returns its new value.
func (s *Service) Track(ctx context.Context, metricType string) (transport.TrackResponse, error) {
	count, err := s.repo.Increment(ctx, metricType)
	if err != nil {
		return transport.TrackResponse{}, err
	}
	return transport.TrackResponse{MetricType: metricType, Count: count}, nil
}

// AdminStats assembles the admin analytics payload. The independent reads
// run in parallel.
func (s *Service) AdminStats(ctx context.Context) (transport.AdminAnalyticsResponse, error) {
	var (
		counts          map[string]int64
		mostOrdered     ordersrepo.BrickTypeStat
		avgBricks       float64
		totalEnquiries  int64
		confirmedOrders int64
		peakEnquiryTime string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = s.repo.Counts(gctx)
		return err
	})
	g.Go(func() (err error) {
		mostOrdered, err = s.orders.MostOrderedBrickType(gctx)
		return err
	})
	g.Go(func() (err error) {
		avgBricks, err = s.orders.AverageQuantity(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalEnquiries, err = s.enquiries.CountAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		confirmedOrders, err = s.orders.CountWithStatuses(gctx, fulfilledStatuses)
		return err
	})
	g.Go(func() (err error) {
		peakEnquiryTime, err = s.enquiries.PeakTimeBucket(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return transport.AdminAnalyticsResponse{}, err
	}

	mostOrderedProduct := transport.MostOrderedProduct{Name: "N/A"}
	if mostOrdered.BrickType != "" {
		mostOrderedProduct = transport.MostOrderedProduct{
			Name:        mostOrdered.BrickType,
			TotalBricks: mostOrdered.TotalBricks,
			TotalOrders: mostOrdered.Orders,
		}
	}

	avgTrolleys := avgBricks / float64(s.cfg.GetBricksPerTrolley())

	var conversionRate float64
	if totalEnquiries > 0 {
		conversionRate = float64(confirmedOrders) / float64(totalEnquiries) * 100
	}

	return transport.AdminAnalyticsResponse{
		Interactions: transport.Interactions{
			WhatsAppClicks: counts[repository.MetricWhatsAppClick],
			CallClicks:     counts[repository.MetricCallClick],
			OrderClicks:    counts[repository.MetricOrderClick],
			CalculatorUses: counts[repository.MetricCalculatorUse],
		},
		Business: transport.BusinessStats{
			MostOrderedProduct: mostOrderedProduct,
			AverageOrderSize: transport.AverageOrderSize{
				Bricks:   round2(avgBricks),
				Trolleys: round2(avgTrolleys),
			},
			PeakEnquiryTime: peakEnquiryTime,
			ConversionRate:  round2(conversionRate),
			Totals: transport.BusinessTotals{
				Enquiries:       totalEnquiries,
				ConfirmedOrders: confirmedOrders,
			},
		},
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
