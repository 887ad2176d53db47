package domain

import (
	"strings"
	"testing"
)

func TestNormalizeQuantityBricks(t *testing.T) {
	bricks, trolleys, err := NormalizeQuantity(UnitBricks, 7500, 3000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bricks != 7500 {
		t.Fatalf("expected 7500 bricks, got %d", bricks)
	}
	if trolleys != 2.5 {
		t.Fatalf("expected 2.5 trolleys, got %v", trolleys)
	}
}

func TestNormalizeQuantityTrolleys(t *testing.T) {
	bricks, trolleys, err := NormalizeQuantity(UnitTrolleys, 2.5, 3000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bricks != 7500 {
		t.Fatalf("expected 7500 bricks, got %d", bricks)
	}
	if trolleys != 2.5 {
		t.Fatalf("expected 2.5 trolleys, got %v", trolleys)
	}
}

func TestNormalizeQuantityRoundsFractionalBricks(t *testing.T) {
	bricks, _, err := NormalizeQuantity(UnitBricks, 1000.6, 3000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bricks != 1001 {
		t.Fatalf("expected 1001 bricks, got %d", bricks)
	}
}

func TestNormalizeQuantityRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		unit  string
		value float64
	}{
		{"zero", UnitBricks, 0},
		{"negative", UnitBricks, -5},
		{"unknown unit", "pallets", 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := NormalizeQuantity(tc.unit, tc.value, 3000); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	cases := []struct {
		name      string
		brickType string
		quantity  int64
		urgency   string
		want      string
	}{
		{"premium grade is hot", BrickAvval, 100, "", PriorityHot},
		{"immediate need is hot", BrickSecond, 100, UrgencyImmediate, PriorityHot},
		{"bulk order is hot", BrickRora, 15000, "", PriorityHot},
		{"mid-size order is warm", BrickSecond, 6000, "", PriorityWarm},
		{"flexible urgency is warm", BrickRora, 100, UrgencyFlexible, PriorityWarm},
		{"small order without urgency is normal", BrickSecond, 100, "", PriorityNormal},
		{"premium beats quantity", BrickAvval, 100, UrgencyFlexible, PriorityHot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyPriority(tc.brickType, tc.quantity, tc.urgency)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestEstimate(t *testing.T) {
	min, max, err := Estimate(BrickAvval, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 8500 || max != 9500 {
		t.Fatalf("expected 8500..9500, got %d..%d", min, max)
	}

	min, max, err = Estimate(BrickRora, 333)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if min != 1166 || max != 1499 {
		t.Fatalf("expected 1166..1499, got %d..%d", min, max)
	}
}

func TestEstimateRejectsUnknownGrade(t *testing.T) {
	if _, _, err := Estimate("Premium", 1000); err == nil {
		t.Fatal("expected error for unknown brick type")
	}
}

func TestFormatBricks(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{15000, "15,000"},
		{1234567, "1,234,567"},
	}
	for _, tc := range cases {
		if got := FormatBricks(tc.in); got != tc.want {
			t.Fatalf("FormatBricks(%d): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		if !ValidStatus(status) {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if ValidStatus("shipped") {
		t.Fatal("expected shipped to be invalid")
	}
}

func TestAdminWhatsAppURL(t *testing.T) {
	got := AdminWhatsAppURL(WhatsAppParams{
		AdminNumber:    "+91 98765-43210",
		CustomerName:   "Ravi Kumar",
		PhoneNumber:    "+919812345678",
		BrickType:      BrickAvval,
		QuantityBricks: 15000,
		DeliveryArea:   "Ludhiana",
		LeadPriority:   PriorityHot,
	})

	if !strings.HasPrefix(got, "https://wa.me/919876543210?text=") {
		t.Fatalf("expected bare-digit wa.me link, got %s", got)
	}
	if strings.Contains(got, "+") {
		t.Fatalf("expected %%20 encoding without plus signs, got %s", got)
	}
	if !strings.Contains(got, "15%2C000") {
		t.Fatalf("expected formatted quantity in message, got %s", got)
	}
	if !strings.Contains(got, "HOT") {
		t.Fatalf("expected uppercased priority in message, got %s", got)
	}
}
