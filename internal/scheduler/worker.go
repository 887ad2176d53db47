package scheduler

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"brickworks_backend/internal/notification"
	"brickworks_backend/platform/config"
	"brickworks_backend/platform/logger"
)

// Worker consumes queued notification tasks and delivers the emails.
type Worker struct {
	server      *asynq.Server
	mux         *asynq.ServeMux
	sender      notification.Sender
	notifyEmail string
	log         *logger.Logger
}

// NewWorker creates a scheduler worker bound to the configured redis queue.
func NewWorker(cfg config.SchedulerConfig, sender notification.Sender, notifyEmail string, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:      server,
		mux:         mux,
		sender:      sender,
		notifyEmail: notifyEmail,
		log:         log,
	}

	mux.HandleFunc(TaskOrderAlertEmail, w.handleOrderAlertEmail)
	mux.HandleFunc(TaskEnquiryAlertEmail, w.handleEnquiryAlertEmail)

	return w, nil
}

// Run serves the queue until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleOrderAlertEmail(ctx context.Context, task *asynq.Task) error {
	if w.sender == nil || w.notifyEmail == "" {
		return nil
	}

	payload, err := ParseOrderAlertEmailPayload(task)
	if err != nil {
		return err
	}

	return w.sender.SendOrderAlert(ctx, w.notifyEmail, notification.OrderAlertData{
		CustomerName:   payload.CustomerName,
		Phone:          payload.Phone,
		BrickType:      payload.BrickType,
		QuantityBricks: payload.QuantityBricks,
		DeliveryArea:   payload.DeliveryArea,
		LeadPriority:   payload.LeadPriority,
		WhatsAppURL:    payload.WhatsAppURL,
	})
}

func (w *Worker) handleEnquiryAlertEmail(ctx context.Context, task *asynq.Task) error {
	if w.sender == nil || w.notifyEmail == "" {
		return nil
	}

	payload, err := ParseEnquiryAlertEmailPayload(task)
	if err != nil {
		return err
	}

	return w.sender.SendEnquiryAlert(ctx, w.notifyEmail, notification.EnquiryAlertData{
		Name:    payload.Name,
		Phone:   payload.Phone,
		Message: payload.Message,
	})
}
