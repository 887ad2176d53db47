// Package domain holds the order intake business rules: quantity
// normalization, lead priority classification, price estimation, and the
// admin WhatsApp deep link.
package domain

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/phone"
)

// Brick grades sold by the yard.
const (
	BrickAvval  = "Avval"
	BrickSecond = "Second"
	BrickRora   = "Rora"
)

// Urgency values accepted on intake.
const (
	UrgencyImmediate = "immediate"
	UrgencyFlexible  = "flexible"
)

// Lead priorities assigned at intake. Priority is derived once and never
// recomputed on later edits.
const (
	PriorityHot    = "hot"
	PriorityWarm   = "warm"
	PriorityNormal = "normal"
)

// Quantity units accepted on intake.
const (
	UnitBricks   = "bricks"
	UnitTrolleys = "trolleys"
)

// Thresholds for the priority classifier, in bricks.
const (
	hotQuantityThreshold  = 15000
	warmQuantityThreshold = 6000
)

// PriceBand is the per-brick price range for one grade.
type PriceBand struct {
	Min float64
	Max float64
}

// pricePerBrick is the static rate card used for the non-binding estimate.
var pricePerBrick = map[string]PriceBand{
	BrickAvval:  {Min: 8.5, Max: 9.5},
	BrickSecond: {Min: 6.5, Max: 7.5},
	BrickRora:   {Min: 3.5, Max: 4.5},
}

// OrderStatuses is the full fulfilment status set, in lifecycle order.
var OrderStatuses = []string{
	"pending", "processing", "confirmed", "in_progress", "dispatched", "delivered", "cancelled",
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// NormalizeQuantity converts the submitted quantity to an authoritative brick
// count and a derived trolley count. Brick values are rounded to the nearest
// whole brick; trolley values are converted at bricksPerTrolley before
// rounding.
func NormalizeQuantity(unit string, value float64, bricksPerTrolley int64) (int64, float64, error) {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, 0, apperr.Validation("quantity must be greater than zero")
	}

	var bricks int64
	switch unit {
	case UnitBricks:
		bricks = int64(math.Round(value))
	case UnitTrolleys:
		bricks = int64(math.Round(value * float64(bricksPerTrolley)))
	default:
		return 0, 0, apperr.Validation("valid quantity unit is required")
	}

	if bricks <= 0 {
		return 0, 0, apperr.Validation("requested quantity is invalid")
	}

	trolleys := float64(bricks) / float64(bricksPerTrolley)
	return bricks, trolleys, nil
}

// ClassifyPriority assigns the lead priority. Precedence is fixed: premium
// grade, immediate need, or a 15k+ order is hot; 6k+ or flexible is warm.
func ClassifyPriority(brickType string, quantityBricks int64, urgency string) string {
	if brickType == BrickAvval || urgency == UrgencyImmediate || quantityBricks >= hotQuantityThreshold {
		return PriorityHot
	}
	if quantityBricks >= warmQuantityThreshold || urgency == UrgencyFlexible {
		return PriorityWarm
	}
	return PriorityNormal
}

// Estimate computes the non-binding price range for the given grade and
// quantity. Both bounds round to the nearest rupee.
func Estimate(brickType string, quantityBricks int64) (int64, int64, error) {
	band, ok := pricePerBrick[brickType]
	if !ok {
		return 0, 0, apperr.Validation("valid brick type is required")
	}

	min := int64(math.Round(float64(quantityBricks) * band.Min))
	max := int64(math.Round(float64(quantityBricks) * band.Max))
	return min, max, nil
}

// FormatBricks renders a brick count with thousands separators for the
// WhatsApp message.
func FormatBricks(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// WhatsAppParams carries the fields rendered into the admin deep link.
type WhatsAppParams struct {
	AdminNumber    string
	CustomerName   string
	PhoneNumber    string
	BrickType      string
	QuantityBricks int64
	DeliveryArea   string
	LeadPriority   string
}

// AdminWhatsAppURL builds the wa.me deep link that opens a prefilled chat
// with the yard's WhatsApp number. The number is reduced to bare digits as
// wa.me rejects formatting characters.
func AdminWhatsAppURL(p WhatsAppParams) string {
	message := fmt.Sprintf(
		"🧱 *New Smart Order Lead*\n\n👤 Name: %s\n📞 Phone: %s\n🧱 Brick Type: %s\n📦 Quantity: %s bricks\n📍 Delivery Area: %s\n🔥 Priority: %s",
		p.CustomerName,
		p.PhoneNumber,
		p.BrickType,
		FormatBricks(p.QuantityBricks),
		p.DeliveryArea,
		strings.ToUpper(p.LeadPriority),
	)

	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone.Digits(p.AdminNumber), encoded)
}
