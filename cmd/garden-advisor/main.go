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

	"github.com/Hexrox/garden-advisor/internal/advisory"
	httpapi "github.com/Hexrox/garden-advisor/internal/api/http"
	"github.com/Hexrox/garden-advisor/internal/cache"
	"github.com/Hexrox/garden-advisor/internal/config"
	"github.com/Hexrox/garden-advisor/internal/provider"
	"github.com/Hexrox/garden-advisor/internal/scheduler"
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

	// Upstream weather provider with resilience (backoff + circuit breaker).
	openWeather := provider.NewOpenWeather(httpClient, cfg.OpenWeatherAPIKey)

	// Optional place-name resolution for the API layer.
	geo := provider.NewGeocoder(cfg.GeocoderAPIKey)

	// Advisory service over a TTL cache with the wall clock.
	advisoryCache := cache.New(cfg.CacheTTL, nil)
	service := advisory.NewService(openWeather, advisoryCache)

	// Scheduler that keeps advisories warm for configured gardens.
	sched := scheduler.New(cfg.Locations, cfg.PrefetchInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "garden-advisor",
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
			"service": "garden-advisor",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, geo)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
