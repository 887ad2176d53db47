package notification

import (
	"context"
	"fmt"

	"brickworks_backend/internal/events"
	"brickworks_backend/internal/orders/domain"
	"brickworks_backend/platform/config"
	"brickworks_backend/platform/logger"
)

// Queue enqueues alert emails for background delivery. The scheduler
// client implements it; a nil queue means direct SMTP delivery.
type Queue interface {
	EnqueueOrderAlertEmail(ctx context.Context, data OrderAlertData) error
	EnqueueEnquiryAlertEmail(ctx context.Context, data EnquiryAlertData) error
}

// Dispatcher listens for order and enquiry events and delivers admin
// alert emails, through the task queue when one is configured.
type Dispatcher struct {
	sender      Sender
	queue       Queue
	notifyEmail string
	enabled     bool
	log         *logger.Logger
}

// NewDispatcher creates a notification dispatcher. Pass a nil queue to
// send directly over SMTP.
func NewDispatcher(cfg config.SMTPConfig, sender Sender, queue Queue, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		sender:      sender,
		queue:       queue,
		notifyEmail: cfg.GetNotifyEmail(),
		enabled:     cfg.IsEmailEnabled() && cfg.GetNotifyEmail() != "",
		log:         log,
	}
}

// RegisterHandlers subscribes the dispatcher to the events it delivers
// emails for.
func (d *Dispatcher) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.OrderCreated{}.EventName(), events.HandlerFunc(d.handleOrderCreated))
	bus.Subscribe(events.EnquiryCreated{}.EventName(), events.HandlerFunc(d.handleEnquiryCreated))
}

func (d *Dispatcher) handleOrderCreated(ctx context.Context, event events.Event) error {
	e, ok := event.(events.OrderCreated)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	if !d.enabled {
		return nil
	}

	data := OrderAlertData{
		CustomerName:   e.CustomerName,
		Phone:          e.Phone,
		BrickType:      e.BrickType,
		QuantityBricks: domain.FormatBricks(e.QuantityBricks),
		DeliveryArea:   e.DeliveryArea,
		LeadPriority:   e.LeadPriority,
		WhatsAppURL:    e.WhatsAppURL,
	}

	if d.queue != nil {
		if err := d.queue.EnqueueOrderAlertEmail(ctx, data); err != nil {
			return fmt.Errorf("enqueue order alert: %w", err)
		}
		return nil
	}
	if d.sender == nil {
		return nil
	}
	if err := d.sender.SendOrderAlert(ctx, d.notifyEmail, data); err != nil {
		return fmt.Errorf("send order alert: %w", err)
	}

	d.log.Info("order alert delivered", "orderId", e.OrderID)
	return nil
}

func (d *Dispatcher) handleEnquiryCreated(ctx context.Context, event events.Event) error {
	e, ok := event.(events.EnquiryCreated)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	if !d.enabled {
		return nil
	}

	data := EnquiryAlertData{
		Name:    e.Name,
		Phone:   e.Phone,
		Message: e.Message,
	}

	if d.queue != nil {
		if err := d.queue.EnqueueEnquiryAlertEmail(ctx, data); err != nil {
			return fmt.Errorf("enqueue enquiry alert: %w", err)
		}
		return nil
	}
	if d.sender == nil {
		return nil
	}
	if err := d.sender.SendEnquiryAlert(ctx, d.notifyEmail, data); err != nil {
		return fmt.Errorf("send enquiry alert: %w", err)
	}

	d.log.Info("enquiry alert delivered", "enquiryId", e.EnquiryID)
	return nil
}
