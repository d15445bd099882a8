package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"goldloan-portal/internal/adapters/api"
	"goldloan-portal/internal/adapters/http/middleware"
	"goldloan-portal/internal/adapters/http/routes"
	"goldloan-portal/internal/config"
	"goldloan-portal/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"

	_ "goldloan-portal/docs" // Swagger docs
)

// @title Gold Loan Portal API
// @version 1.0
// @description Session-bound portal for gold loan customers and bank staff
// @BasePath /

func main() {
	envFile := pflag.String("env-file", "", "path to a .env file (default: ./.env)")
	port := pflag.String("port", "", "listen port (overrides PORT)")
	pflag.Parse()

	// Load configuration
	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	if *port != "" {
		cfg.Port = *port
	}

	// Connect session storage
	store, err := config.ConnectStorage(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect session storage: %v", err)
	}
	defer config.CloseStorage()

	backend := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	log.Printf("✅ Loan API client ready [%s]", cfg.API.BaseURL)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Gold Loan Portal v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg, store)

	// Setup routes
	container := routes.Setup(app, cfg, backend, store, reg)

	// Start Cron Service (gold rate refresh, idle session sweep, slot purge)
	cronService := services.NewCronService(container.Bullion, container.Sessions, cfg.GoldRateRefresh, cfg.SessionIdle()).
		WithRecorder(container.Metrics)
	if purger, ok := store.(services.SlotPurger); ok {
		cronService.WithPurger(purger)
	}
	if err := cronService.Register(); err != nil {
		log.Fatalf("❌ Failed to register cron jobs: %v", err)
	}
	cronService.Start()
	defer cronService.Stop()

	// Warm the gold rate cache
	go cronService.RefreshRates()

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
