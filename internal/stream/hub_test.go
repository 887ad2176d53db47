package stream

import (
	"testing"

	"brickworks_backend/platform/logger"
)

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub("products", logger.New("test"), nil)
	defer hub.Close()

	first := hub.subscribe()
	second := hub.subscribe()
	if hub.Subscribers() != 2 {
		t.Fatalf("expected 2 subscribers, got %d", hub.Subscribers())
	}

	hub.Broadcast(Event{Name: "product_updated", Data: "payload"})

	for _, ch := range []chan Event{first, second} {
		select {
		case event := <-ch:
			if event.Name != "product_updated" {
				t.Fatalf("unexpected event %s", event.Name)
			}
		default:
			t.Fatal("expected buffered event")
		}
	}
}

func TestBroadcastDropsWhenSubscriberBufferFull(t *testing.T) {
	hub := NewHub("products", logger.New("test"), nil)
	defer hub.Close()

	ch := hub.subscribe()
	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Broadcast(Event{Name: "tick"})
	}

	if len(ch) != subscriberBuffer {
		t.Fatalf("expected buffer capped at %d, got %d", subscriberBuffer, len(ch))
	}
}

func TestUnsubscribeRemovesAndCloses(t *testing.T) {
	hub := NewHub("gallery", logger.New("test"), nil)

	ch := hub.subscribe()
	hub.unsubscribe(ch)
	if hub.Subscribers() != 0 {
		t.Fatalf("expected 0 subscribers, got %d", hub.Subscribers())
	}
	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed")
	}

	// Double unsubscribe must not panic on the closed channel.
	hub.unsubscribe(ch)
}

func TestCloseDisconnectsEverySubscriber(t *testing.T) {
	hub := NewHub("reviews", logger.New("test"), nil)

	first := hub.subscribe()
	second := hub.subscribe()
	hub.Close()

	if hub.Subscribers() != 0 {
		t.Fatalf("expected 0 subscribers after close, got %d", hub.Subscribers())
	}
	for _, ch := range []chan Event{first, second} {
		if _, ok := <-ch; ok {
			t.Fatal("expected channel to be closed")
		}
	}
}
