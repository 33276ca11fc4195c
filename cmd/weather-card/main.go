package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-card/internal/api/http"
	"github.com/i474232898/weather-card/internal/app"
	"github.com/i474232898/weather-card/internal/config"
	"github.com/i474232898/weather-card/internal/scheduler"
	"github.com/i474232898/weather-card/internal/store"
	"github.com/i474232898/weather-card/internal/weather"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.Printf("INFO: config: %s", cfg)

	// In-memory view sessions with configured retention.
	views := store.NewMemoryStore(cfg.ViewMaxCount, cfg.ViewMaxAge)

	// Intermediate states (loading indicators) are visible to GET while a
	// refresh is in flight. Deleted views are not resurrected.
	service := app.NewWeatherService(cfg, weather.WithObserver(func(v weather.ViewState) {
		views.Update(v)
	}))

	// Scheduler that periodically drops idle views.
	sched := scheduler.New(views, cfg.SweepInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	server := fiber.New(fiber.Config{
		AppName:               "weather-card",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
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
	server.Use(logger.New())
	server.Use(recover.New())

	// Basic health endpoint
	server.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-card",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(server, service, views)

	go func() {
		log.Printf("INFO: listening on :%s", cfg.Port)
		if err := server.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
