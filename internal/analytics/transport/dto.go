package transport

// TrackRequest names the counter to increment.
type TrackRequest struct {
	MetricType string `json:"metricType" validate:"required,oneof=whatsapp_click call_click order_click calculator_use"`
}

// TrackResponse carries the new counter value.
type TrackResponse struct {
	MetricType string `json:"metricType"`
	Count      int64  `json:"count"`
}

// Interactions holds the raw public-interaction counters.
type Interactions struct {
	WhatsAppClicks int64 `json:"whatsappClicks"`
	CallClicks     int64 `json:"callClicks"`
	OrderClicks    int64 `json:"orderClicks"`
	CalculatorUses int64 `json:"calculatorUses"`
}

// MostOrderedProduct describes the best-selling brick grade.
type MostOrderedProduct struct {
	Name        string `json:"name"`
	TotalBricks int64  `json:"totalBricks"`
	TotalOrders int64  `json:"totalOrders"`
}

// AverageOrderSize is the mean order quantity in both units.
type AverageOrderSize struct {
	Bricks   float64 `json:"bricks"`
	Trolleys float64 `json:"trolleys"`
}

// BusinessTotals holds raw record totals used for the conversion rate.
type BusinessTotals struct {
	Enquiries       int64 `json:"enquiries"`
	ConfirmedOrders int64 `json:"confirmedOrders"`
}

// BusinessStats holds the derived business metrics.
type BusinessStats struct {
	MostOrderedProduct MostOrderedProduct `json:"mostOrderedProduct"`
	AverageOrderSize   AverageOrderSize   `json:"averageOrderSize"`
	PeakEnquiryTime    string             `json:"peakEnquiryTime"`
	ConversionRate     float64            `json:"conversionRate"`
	Totals             BusinessTotals     `json:"totals"`
}

// AdminAnalyticsResponse is the admin analytics dashboard payload.
type AdminAnalyticsResponse struct {
	Interactions Interactions  `json:"interactions"`
	Business     BusinessStats `json:"business"`
}
