package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"brickworks_backend/internal/notification"
	"brickworks_backend/internal/scheduler"
	"brickworks_backend/platform/config"
	"brickworks_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.IsSchedulerEnabled() {
		log.Error("REDIS_URL is required for the scheduler worker")
		panic("REDIS_URL is required for the scheduler worker")
	}

	var sender notification.Sender
	if cfg.IsEmailEnabled() {
		sender = notification.NewSMTPSender(cfg)
	} else {
		log.Warn("SMTP not configured; queued alert emails will be dropped")
	}

	worker, err := scheduler.NewWorker(cfg, sender, cfg.GetNotifyEmail(), log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	worker.Run(ctx)
}
