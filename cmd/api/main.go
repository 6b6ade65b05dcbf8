package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"customer-support/config"
	_ "customer-support/docs" // Swagger docs
	"customer-support/internal/app"
	"customer-support/internal/httpserver"
	"customer-support/pkg/log"
)

// @title       Customer Support Router API
// @description Keyword-scored intent routing across refund, order, support and fallback responders.
// @version     1
// @host        localhost:8080
// @BasePath    /
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Customer Support Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Conversation stack
	application, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build application: ", err)
		return
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close transaction log: %v", err)
		}
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ConversationUC:  application.UseCase,
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
