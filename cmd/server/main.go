package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/ai"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps/outfits"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps/sustainability"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps/wardrobe"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps/weather"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/events"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/openweather"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/recommend"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/store"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	stdoutHandler := logging.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	plugins := []apps.Plugin{
		wardrobe.New(),
		outfits.New(),
		weather.New(),
		sustainability.New(),
	}

	// Store
	var (
		st          store.Store
		db          *gorm.DB
		dbLog       *logging.DBHandler
		cleanupDone = make(chan struct{})
	)
	if cfg.StoreDriver == config.DriverMemory {
		st = store.NewMemoryStore()
		slog.Info("using in-memory store")
	} else {
		var err error
		db, err = database.Connect(cfg)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}

		tables := []interface{}{}
		tables = append(tables, store.Models()...)
		for _, p := range plugins {
			tables = append(tables, p.Models()...)
		}
		if err := database.Migrate(db, tables...); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
		st = store.NewGormStore(db)

		// ERROR+ records are also batched into system_logs
		dbLog = logging.NewDBHandler(db)
		slog.SetDefault(slog.New(logging.NewMultiHandler(stdoutHandler, dbLog)))
		logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)
	}

	if cfg.SeedSampleData {
		if err := seed(st, cfg.SeedUserPassword); err != nil {
			slog.Error("seeding sample data failed", "error", err)
			os.Exit(1)
		}
	}

	// External adapters
	aiClient := ai.NewClient(cfg)

	var weatherProvider openweather.Provider = openweather.NewClient(cfg)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(opts)
		weatherProvider = openweather.NewCache(weatherProvider, redisClient, cfg.WeatherCacheTTL)
		slog.Info("weather cache enabled", "ttl", cfg.WeatherCacheTTL.String())
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		p, err := events.NewAMQPPublisher(cfg.RabbitMQURL, cfg.EventsQueue)
		if err != nil {
			slog.Warn("event publisher unavailable, events are dropped", "error", err)
		} else {
			publisher = p
		}
	}

	deps := &apps.Deps{
		Store:       st,
		Config:      cfg,
		Garments:    aiClient,
		Materials:   aiClient,
		Weather:     weatherProvider,
		Recommender: recommend.NewEngine(st, weatherProvider, aiClient, cfg.DefaultLocation),
		Events:      publisher,
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(services.NewAuthService(st, cfg))
	healthHandler := handlers.NewHealthHandler(st, cfg.StoreDriver, len(plugins))

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, authHandler, healthHandler, deps, plugins)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "store", cfg.StoreDriver)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := publisher.Close(); err != nil {
		slog.Error("event publisher close error", "error", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}

	close(cleanupDone)
	if dbLog != nil {
		dbLog.Stop()
	}
	sentry.Flush(2 * time.Second)

	if db != nil {
		if err := database.Close(db); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func seed(st store.Store, password string) error {
	hash, err := services.HashPassword(password)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := store.Seed(ctx, st, hash); err != nil {
		return err
	}
	slog.Info("sample data ready", "username", store.SampleUsername)
	return nil
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := apperr.Status(err)
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		message = "Internal server error"
	} else if fe == nil {
		message = err.Error()
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
