package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/nomadweather/weather-dashboard/internal/api/http"
	"github.com/nomadweather/weather-dashboard/internal/config"
	"github.com/nomadweather/weather-dashboard/internal/dashboard"
	"github.com/nomadweather/weather-dashboard/internal/scheduler"
	"github.com/nomadweather/weather-dashboard/internal/store"
	"github.com/nomadweather/weather-dashboard/internal/weather"
	"github.com/nomadweather/weather-dashboard/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Pipeline: geocoding resolver + forecast fetcher.
	resolver := providers.NewGeocodingClient(httpClient, cfg.GeocodingBaseURL)
	fetcher := providers.NewForecastClient(httpClient, cfg.ForecastBaseURL)

	// Preview aggregator over the curated destination catalogue.
	previews := weather.NewPreviewService(resolver, fetcher, weather.PopularDestinations)

	// Persisted theme preference.
	prefs := store.NewPrefsStore(cfg.ThemeFile)

	// Dashboard state container.
	dash := dashboard.New(resolver, fetcher, previews, prefs, cfg.DefaultTheme)

	// Initial load: default city plus previews, concurrently, in the
	// background. Cancelled on shutdown.
	bootCtx, bootCancel := context.WithCancel(context.Background())
	defer bootCancel()
	go dash.Bootstrap(bootCtx, cfg.DefaultCity)

	// Periodic preview refresh.
	sched := scheduler.New(dash, cfg.PreviewRefreshInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, dash)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	bootCancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
