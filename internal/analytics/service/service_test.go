package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"brickworks_backend/internal/analytics/repository"
	ordersrepo "brickworks_backend/internal/orders/repository"
	"brickworks_backend/platform/logger"
)

type fakeAnalyticsRepo struct {
	counts map[string]int64
}

func (f *fakeAnalyticsRepo) Increment(_ context.Context, metricType string) (int64, error) {
	if f.counts == nil {
		f.counts = make(map[string]int64)
	}
	f.counts[metricType]++
	return f.counts[metricType], nil
}

func (f *fakeAnalyticsRepo) Counts(context.Context) (map[string]int64, error) {
	return f.counts, nil
}

type fakeOrderReader struct {
	mostOrdered ordersrepo.BrickTypeStat
	avgQuantity float64
	confirmed   int64
}

func (f *fakeOrderReader) GetByID(context.Context, uuid.UUID) (ordersrepo.Order, error) {
	return ordersrepo.Order{}, nil
}

func (f *fakeOrderReader) List(context.Context, int) ([]ordersrepo.Order, error) {
	return nil, nil
}

func (f *fakeOrderReader) CountAll(context.Context) (int64, error) { return 0, nil }

func (f *fakeOrderReader) CountSince(context.Context, time.Time) (int64, error) { return 0, nil }

func (f *fakeOrderReader) CountByStatus(context.Context, string) (int64, error) { return 0, nil }

func (f *fakeOrderReader) CountWithStatuses(context.Context, []string) (int64, error) {
	return f.confirmed, nil
}

func (f *fakeOrderReader) MostOrderedBrickType(context.Context) (ordersrepo.BrickTypeStat, error) {
	return f.mostOrdered, nil
}

func (f *fakeOrderReader) AverageQuantity(context.Context) (float64, error) {
	return f.avgQuantity, nil
}

type fakeEnquiryStats struct {
	total int64
	peak  string
}

func (f *fakeEnquiryStats) CountAll(context.Context) (int64, error) { return f.total, nil }

func (f *fakeEnquiryStats) PeakTimeBucket(context.Context) (string, error) { return f.peak, nil }

type stubBusinessConfig struct{}

func (stubBusinessConfig) GetWhatsAppNumber() string  { return "" }
func (stubBusinessConfig) GetContactEmail() string    { return "" }
func (stubBusinessConfig) GetBricksPerTrolley() int64 { return 3000 }

func TestTrackReturnsNewCount(t *testing.T) {
	svc := New(&fakeAnalyticsRepo{}, &fakeOrderReader{}, &fakeEnquiryStats{}, stubBusinessConfig{}, logger.New("test"))

	for want := int64(1); want <= 3; want++ {
		result, err := svc.Track(context.Background(), repository.MetricWhatsAppClick)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Count != want {
			t.Fatalf("expected count %d, got %d", want, result.Count)
		}
		if result.MetricType != repository.MetricWhatsAppClick {
			t.Fatalf("unexpected metric type %s", result.MetricType)
		}
	}
}

func TestAdminStatsDerivedMetrics(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{counts: map[string]int64{
		repository.MetricWhatsAppClick: 12,
		repository.MetricCallClick:     4,
	}}
	orderReader := &fakeOrderReader{
		mostOrdered: ordersrepo.BrickTypeStat{BrickType: "Avval", TotalBricks: 45000, Orders: 3},
		avgQuantity: 7333.3333,
		confirmed:   3,
	}
	enquiryStats := &fakeEnquiryStats{total: 9, peak: "Morning"}

	svc := New(analyticsRepo, orderReader, enquiryStats, stubBusinessConfig{}, logger.New("test"))

	stats, err := svc.AdminStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Interactions.WhatsAppClicks != 12 || stats.Interactions.CallClicks != 4 {
		t.Fatalf("unexpected interactions: %+v", stats.Interactions)
	}
	if stats.Interactions.OrderClicks != 0 {
		t.Fatalf("expected untracked metric to read zero, got %d", stats.Interactions.OrderClicks)
	}
	if stats.Business.MostOrderedProduct.Name != "Avval" {
		t.Fatalf("unexpected most-ordered product: %+v", stats.Business.MostOrderedProduct)
	}
	if stats.Business.AverageOrderSize.Bricks != 7333.33 {
		t.Fatalf("expected bricks average 7333.33, got %v", stats.Business.AverageOrderSize.Bricks)
	}
	if stats.Business.AverageOrderSize.Trolleys != 2.44 {
		t.Fatalf("expected trolleys average 2.44, got %v", stats.Business.AverageOrderSize.Trolleys)
	}
	if stats.Business.PeakEnquiryTime != "Morning" {
		t.Fatalf("unexpected peak enquiry time %s", stats.Business.PeakEnquiryTime)
	}
	if stats.Business.ConversionRate != 33.33 {
		t.Fatalf("expected conversion rate 33.33, got %v", stats.Business.ConversionRate)
	}
}

func TestAdminStatsEmptyDataset(t *testing.T) {
	svc := New(&fakeAnalyticsRepo{}, &fakeOrderReader{}, &fakeEnquiryStats{peak: "N/A"}, stubBusinessConfig{}, logger.New("test"))

	stats, err := svc.AdminStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Business.MostOrderedProduct.Name != "N/A" {
		t.Fatalf("expected N/A fallback, got %s", stats.Business.MostOrderedProduct.Name)
	}
	if stats.Business.ConversionRate != 0 {
		t.Fatalf("expected zero conversion rate, got %v", stats.Business.ConversionRate)
	}
	if stats.Business.PeakEnquiryTime != "N/A" {
		t.Fatalf("expected N/A peak time, got %s", stats.Business.PeakEnquiryTime)
	}
}
