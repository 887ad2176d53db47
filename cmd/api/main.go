package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"brickworks_backend/internal/activitylog"
	"brickworks_backend/internal/analytics"
	"brickworks_backend/internal/auth"
	"brickworks_backend/internal/catalog"
	"brickworks_backend/internal/dashboard"
	"brickworks_backend/internal/enquiries"
	"brickworks_backend/internal/events"
	"brickworks_backend/internal/gallery"
	apphttp "brickworks_backend/internal/http"
	"brickworks_backend/internal/http/router"
	"brickworks_backend/internal/inventory"
	"brickworks_backend/internal/notification"
	"brickworks_backend/internal/orders"
	"brickworks_backend/internal/reviews"
	"brickworks_backend/internal/scheduler"
	"brickworks_backend/internal/storage"
	"brickworks_backend/platform/config"
	"brickworks_backend/platform/db"
	"brickworks_backend/platform/httpkit"
	"brickworks_backend/platform/logger"
	"brickworks_backend/platform/validator"
)

const appVersion = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	eventBus := events.NewInMemoryBus(log)

	limiters := httpkit.NewLimiters(log)
	defer limiters.Close()

	val := validator.New()

	// Media object storage. Upload endpoints reject requests when MinIO
	// is not configured.
	var store storage.Service
	if cfg.IsMinIOEnabled() {
		minioSvc, err := storage.NewMinIOService(cfg, log)
		if err != nil {
			log.Error("failed to initialize storage service", "error", err)
			panic("failed to initialize storage service: " + err.Error())
		}
		ensureBucket(ctx, log, minioSvc, "gallery-media", cfg.GetMinioBucketGalleryMedia())
		ensureBucket(ctx, log, minioSvc, "product-images", cfg.GetMinioBucketProductImages())
		store = minioSvc
		log.Info("storage service initialized",
			"galleryBucket", cfg.GetMinioBucketGalleryMedia(),
			"productImagesBucket", cfg.GetMinioBucketProductImages())
	} else {
		log.Warn("MINIO_ENDPOINT not configured; media uploads disabled")
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification dispatcher subscribes to domain events (not HTTP-facing).
	// With redis configured the emails go through the task queue; otherwise
	// they are sent directly over SMTP.
	var sender notification.Sender
	if cfg.IsEmailEnabled() {
		sender = notification.NewSMTPSender(cfg)
	} else {
		log.Warn("SMTP not configured; admin alert emails disabled")
	}

	var queue notification.Queue
	if cfg.IsSchedulerEnabled() {
		queueClient, err := scheduler.NewClient(cfg)
		if err != nil {
			log.Error("failed to initialize scheduler client", "error", err)
			panic("failed to initialize scheduler client: " + err.Error())
		}
		defer func() { _ = queueClient.Close() }()
		queue = queueClient
		log.Info("scheduler queue client initialized")
	} else {
		log.Warn("REDIS_URL not configured; alert emails sent inline")
	}

	dispatcher := notification.NewDispatcher(cfg, sender, queue, log)
	dispatcher.RegisterHandlers(eventBus)

	activitylogModule := activitylog.NewModule(pool, log)
	audit := activitylogModule.Service()

	authModule := auth.NewModule(pool, cfg, val, log)
	inventoryModule := inventory.NewModule(pool, audit, eventBus, val, log)
	ordersModule := orders.NewModule(pool, inventoryModule.Service(), cfg, eventBus, val, log)
	catalogModule := catalog.NewModule(pool, store, cfg.GetMinioBucketProductImages(), audit, eventBus, val, log)
	defer catalogModule.Close()
	enquiriesModule := enquiries.NewModule(pool, eventBus, val, log)
	reviewsModule := reviews.NewModule(pool, eventBus, val, log)
	defer reviewsModule.Close()
	galleryModule := gallery.NewModule(pool, store, cfg.GetMinioBucketGalleryMedia(), eventBus, val, log)
	defer galleryModule.Close()
	analyticsModule := analytics.NewModule(pool, ordersModule.Repository(), enquiriesModule.Service(), cfg, val, log)
	dashboardModule := dashboard.NewModule(catalogModule.Service(), enquiriesModule.Service(), ordersModule.Repository(), inventoryModule.Service(), log)

	seed(ctx, log, authModule, catalogModule, inventoryModule)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:         cfg,
		Logger:         log,
		Health:         pool,
		EventBus:       eventBus,
		AuthMiddleware: authModule.CookieAuth(),
		Limiters:       limiters,
		Version:        appVersion,
		Modules: []apphttp.Module{
			authModule,
			ordersModule,
			catalogModule,
			inventoryModule,
			enquiriesModule,
			reviewsModule,
			galleryModule,
			analyticsModule,
			dashboardModule,
			activitylogModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// ensureBucket wraps the retry logic for verifying a MinIO bucket exists.
func ensureBucket(ctx context.Context, log *logger.Logger, store storage.Service, name, bucket string) {
	if err := withRetry(ctx, log, "ensure "+name+" bucket", 5, 2*time.Second, func() error {
		return store.EnsureBucketExists(ctx, bucket)
	}); err != nil {
		log.Error("failed to ensure storage bucket exists", "error", err, "bucket", bucket)
		panic("failed to ensure storage bucket exists: " + err.Error())
	}
}

// seed provisions the initial admin account, product catalog and inventory
// snapshot. Failures are logged but do not prevent startup.
func seed(ctx context.Context, log *logger.Logger, authModule *auth.Module, catalogModule *catalog.Module, inventoryModule *inventory.Module) {
	if err := authModule.Service().SeedAdmin(ctx); err != nil {
		log.Error("failed to seed admin account", "error", err)
	}
	if err := catalogModule.Service().SeedDefaults(ctx); err != nil {
		log.Error("failed to seed default products", "error", err)
	}
	if err := inventoryModule.Service().SeedDefault(ctx); err != nil {
		log.Error("failed to seed inventory snapshot", "error", err)
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return errors.New(name + ": invalid retry attempts")
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
