package main

import (
	"context"
	"errors"
	"log" // Use standard log only for initial fatal errors before logger is set up
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"positionSizer/config"
	"positionSizer/internal/adapters/httpapi"
	"positionSizer/internal/adapters/logger"
	"positionSizer/internal/app"
	"positionSizer/internal/monitoring"
	"positionSizer/internal/risk"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Info(context.Background(), "Logger initialized", map[string]interface{}{"level": appLogger.Level().String()})

	// 3. Initialize Application Service
	sizingService, err := app.NewSizingService(cfg, appLogger, risk.NewCalculator(), monitoring.NewRecorder())
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize sizing service")
		log.Fatalf("FATAL: Failed to initialize sizing service: %v", err)
	}
	appLogger.Info(context.Background(), "Sizing service initialized", map[string]interface{}{
		"lockPolicy":   string(cfg.LockPolicy),
		"defaultsFile": cfg.DefaultsFile,
	})

	// 4. Build HTTP routes
	routes := httpapi.Config{Service: sizingService, Logger: appLogger}
	if cfg.MetricsEnabled {
		routes.MetricsHandler = monitoring.Handler()
	}
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(routes),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 5. Serve until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info(ctx, "HTTP server listening", map[string]interface{}{"addr": cfg.HTTPAddr, "metrics": cfg.MetricsEnabled})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error(ctx, err, "HTTP server failed")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(context.Background(), err, "Error during HTTP server shutdown")
	}

	appLogger.Info(context.Background(), "Application finished gracefully.")
}
