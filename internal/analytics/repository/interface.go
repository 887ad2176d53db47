package repository

import "context"

// Metric type names tracked by the public counter endpoint.
const (
	MetricWhatsAppClick = "whatsapp_click"
	MetricCallClick     = "call_click"
	MetricOrderClick    = "order_click"
	MetricCalculatorUse = "calculator_use"
)

// MetricTypes lists every tracked counter.
var MetricTypes = []string{
	MetricWhatsAppClick,
	MetricCallClick,
	MetricOrderClick,
	MetricCalculatorUse,
}

// Repository defines data access for analytics counters.
type Repository interface {
	// Increment atomically bumps the counter for the metric, creating it on
	// first use, and returns the new count.
	Increment(ctx context.Context, metricType string) (int64, error)

	// Counts returns the current value of every tracked counter. Metrics
	// never tracked are absent from the map.
	Counts(ctx context.Context) (map[string]int64, error)
}
