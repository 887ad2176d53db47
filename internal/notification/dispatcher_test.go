package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"brickworks_backend/internal/events"
	"brickworks_backend/platform/logger"
)

type smtpTestConfig struct {
	enabled     bool
	notifyEmail string
}

func (c smtpTestConfig) GetSMTPHost() string         { return "smtp.example.com" }
func (c smtpTestConfig) GetSMTPPort() int            { return 587 }
func (c smtpTestConfig) GetSMTPUsername() string     { return "" }
func (c smtpTestConfig) GetSMTPPassword() string     { return "" }
func (c smtpTestConfig) GetEmailFromName() string    { return "Brickworks" }
func (c smtpTestConfig) GetEmailFromAddress() string { return "noreply@example.com" }
func (c smtpTestConfig) GetNotifyEmail() string      { return c.notifyEmail }
func (c smtpTestConfig) IsEmailEnabled() bool        { return c.enabled }

type recordingSender struct {
	orderAlerts   []OrderAlertData
	enquiryAlerts []EnquiryAlertData
}

func (r *recordingSender) SendOrderAlert(_ context.Context, _ string, data OrderAlertData) error {
	r.orderAlerts = append(r.orderAlerts, data)
	return nil
}

func (r *recordingSender) SendEnquiryAlert(_ context.Context, _ string, data EnquiryAlertData) error {
	r.enquiryAlerts = append(r.enquiryAlerts, data)
	return nil
}

type recordingQueue struct {
	orderAlerts   []OrderAlertData
	enquiryAlerts []EnquiryAlertData
}

func (r *recordingQueue) EnqueueOrderAlertEmail(_ context.Context, data OrderAlertData) error {
	r.orderAlerts = append(r.orderAlerts, data)
	return nil
}

func (r *recordingQueue) EnqueueEnquiryAlertEmail(_ context.Context, data EnquiryAlertData) error {
	r.enquiryAlerts = append(r.enquiryAlerts, data)
	return nil
}

func orderCreatedEvent() events.OrderCreated {
	return events.OrderCreated{
		BaseEvent:      events.NewBaseEvent(),
		OrderID:        uuid.New(),
		CustomerName:   "Ravi Kumar",
		Phone:          "+919812345678",
		BrickType:      "Avval",
		QuantityBricks: 15000,
		DeliveryArea:   "Ludhiana",
		LeadPriority:   "hot",
		WhatsAppURL:    "https://wa.me/919876543210",
	}
}

func TestDispatcherSendsDirectlyWithoutQueue(t *testing.T) {
	sender := &recordingSender{}
	cfg := smtpTestConfig{enabled: true, notifyEmail: "owner@example.com"}
	d := NewDispatcher(cfg, sender, nil, logger.New("test"))

	if err := d.handleOrderCreated(context.Background(), orderCreatedEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.orderAlerts) != 1 {
		t.Fatalf("expected 1 sent alert, got %d", len(sender.orderAlerts))
	}
	if sender.orderAlerts[0].QuantityBricks != "15,000" {
		t.Fatalf("expected formatted quantity, got %s", sender.orderAlerts[0].QuantityBricks)
	}
}

func TestDispatcherPrefersQueue(t *testing.T) {
	sender := &recordingSender{}
	queue := &recordingQueue{}
	cfg := smtpTestConfig{enabled: true, notifyEmail: "owner@example.com"}
	d := NewDispatcher(cfg, sender, queue, logger.New("test"))

	if err := d.handleOrderCreated(context.Background(), orderCreatedEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.handleEnquiryCreated(context.Background(), events.EnquiryCreated{
		BaseEvent: events.NewBaseEvent(),
		EnquiryID: uuid.New(),
		Name:      "Tom",
		Phone:     "+919812345678",
		Message:   "need bricks",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(queue.orderAlerts) != 1 || len(queue.enquiryAlerts) != 1 {
		t.Fatalf("expected queued alerts, got %d/%d", len(queue.orderAlerts), len(queue.enquiryAlerts))
	}
	if len(sender.orderAlerts) != 0 {
		t.Fatal("expected no direct sends when a queue is configured")
	}
}

func TestDispatcherSkipsWhenDisabled(t *testing.T) {
	sender := &recordingSender{}
	queue := &recordingQueue{}
	cfg := smtpTestConfig{enabled: false, notifyEmail: "owner@example.com"}
	d := NewDispatcher(cfg, sender, queue, logger.New("test"))

	if err := d.handleOrderCreated(context.Background(), orderCreatedEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.orderAlerts) != 0 || len(queue.orderAlerts) != 0 {
		t.Fatal("expected no delivery when email is disabled")
	}
}
