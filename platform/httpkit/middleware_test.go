package httpkit

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestIPRateLimiterExhaustsBurst(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1.0/900.0), 5, nil)
	defer limiter.Close()

	for i := 0; i < 5; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("expected request %d within burst to be allowed", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("expected request beyond burst to be rejected")
	}
}

func TestIPRateLimiterTracksIPsIndependently(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1.0/900.0), 1, nil)
	defer limiter.Close()

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("expected first IP to be allowed")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("expected first IP to be exhausted")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Fatal("expected second IP to have its own bucket")
	}
	if limiter.Size() != 2 {
		t.Fatalf("expected 2 tracked IPs, got %d", limiter.Size())
	}
}

func TestIPRateLimiterRefills(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(100), 1, nil)
	defer limiter.Close()

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("expected first request to be allowed")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("expected immediate second request to be rejected")
	}

	time.Sleep(15 * time.Millisecond)
	if !limiter.Allow("10.0.0.1") {
		t.Fatal("expected token to refill after the rate interval")
	}
}
