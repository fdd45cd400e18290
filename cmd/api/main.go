package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"production-board/config"
	_ "production-board/docs" // Swagger docs
	"production-board/internal/httpserver"
	"production-board/internal/middleware"
	"production-board/internal/view/usecase"
	"production-board/pkg/datemath"
	"production-board/pkg/log"
)

// @title       Production Board View API
// @description Derived schedule, list and progress views over shots, tasks and notes.
// @version     1
// @host        localhost:8080
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

	logger.Info(ctx, "Starting production-board views...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser for due windows
	dateMathParser, err := datemath.NewParser(cfg.View.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.View.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. View domain
	viewUC, err := usecase.New(logger, dateMathParser, cfg.View)
	if err != nil {
		logger.Error(ctx, "Failed to initialize view use case: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit),
		ViewUseCase: viewUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
