// Package scheduler provides the asynq task queue client and worker used
// for background notification email delivery.
package scheduler

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"brickworks_backend/internal/notification"
	"brickworks_backend/platform/config"
)

// Client enqueues notification tasks onto the redis-backed queue.
type Client struct {
	client *asynq.Client
	queue  string
}

// NewClient creates a queue client from the scheduler configuration.
func NewClient(cfg config.SchedulerConfig) (*Client, error) {
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

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

// Close releases the underlying redis connections.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueOrderAlertEmail queues an order alert email for delivery by the
// scheduler worker.
func (c *Client) EnqueueOrderAlertEmail(ctx context.Context, data notification.OrderAlertData) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewOrderAlertEmailTask(OrderAlertEmailPayload{
		CustomerName:   data.CustomerName,
		Phone:          data.Phone,
		BrickType:      data.BrickType,
		QuantityBricks: data.QuantityBricks,
		DeliveryArea:   data.DeliveryArea,
		LeadPriority:   data.LeadPriority,
		WhatsAppURL:    data.WhatsAppURL,
	})
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue))
	return err
}

// EnqueueEnquiryAlertEmail queues an enquiry alert email for delivery by
// the scheduler worker.
func (c *Client) EnqueueEnquiryAlertEmail(ctx context.Context, data notification.EnquiryAlertData) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewEnquiryAlertEmailTask(EnquiryAlertEmailPayload{
		Name:    data.Name,
		Phone:   data.Phone,
		Message: data.Message,
	})
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue))
	return err
}

func redisClientOpt(redisURL string) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: opt.TLSConfig,
	}, nil
}
