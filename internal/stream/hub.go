// Package stream provides Server-Sent Events support for the public
// storefront: one hub per topic (products, gallery, reviews).
package stream

import (
	"sync"
	"time"

	"brickworks_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

const (
	// subscriberBuffer bounds the per-subscriber channel. A subscriber that
	// cannot keep up has events dropped rather than blocking the broadcaster.
	subscriberBuffer = 16

	heartbeatInterval = 25 * time.Second
)

// Event is a named SSE payload.
type Event struct {
	Name string
	Data interface{}
}

// Hub fans broadcast events out to every connected subscriber of one topic.
type Hub struct {
	topic string
	log   *logger.Logger

	mu   sync.RWMutex
	subs map[chan Event]struct{}

	// snapshot builds the payload for the initial "connected" event.
	snapshot func() interface{}
}

// NewHub creates a hub for the given topic. snapshot, when non-nil, is invoked
// per connection to build the initial state pushed as the "connected" event.
func NewHub(topic string, log *logger.Logger, snapshot func() interface{}) *Hub {
	return &Hub{
		topic:    topic,
		log:      log,
		subs:     make(map[chan Event]struct{}),
		snapshot: snapshot,
	}
}

// SetSnapshot replaces the snapshot builder. Used when the data source is
// wired after the hub is constructed.
func (h *Hub) SetSnapshot(snapshot func() interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshot = snapshot
}

func (h *Hub) subscribe() chan Event {
	ch := make(chan Event, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Subscribers returns the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Broadcast delivers the event to every subscriber. Slow subscribers with a
// full buffer miss the event; they re-sync on the next broadcast.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- event:
		default:
			h.log.Warn("sse subscriber buffer full, dropping event",
				"topic", h.topic, "event", event.Name)
		}
	}
}

// Handler returns the Gin handler serving this topic's event stream.
func (h *Hub) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.Header().Set("X-Accel-Buffering", "no")

		ch := h.subscribe()
		defer h.unsubscribe(ch)

		h.mu.RLock()
		snapshot := h.snapshot
		h.mu.RUnlock()

		var initial interface{}
		if snapshot != nil {
			initial = snapshot()
		}
		c.SSEvent("connected", gin.H{"topic": h.topic, "data": initial})
		c.Writer.Flush()

		heartbeat := time.NewTicker(heartbeatInterval)
		defer heartbeat.Stop()

		clientGone := c.Request.Context().Done()
		for {
			select {
			case <-clientGone:
				return
			case <-heartbeat.C:
				// Comment line keeps intermediaries from timing out the stream.
				if _, err := c.Writer.WriteString(": heartbeat\n\n"); err != nil {
					return
				}
				c.Writer.Flush()
			case event, ok := <-ch:
				if !ok {
					return
				}
				c.SSEvent(event.Name, event.Data)
				c.Writer.Flush()
			}
		}
	}
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
}
