package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"meeting-task-extractor/config"
	_ "meeting-task-extractor/docs" // Swagger docs
	"meeting-task-extractor/internal/bootstrap"
	"meeting-task-extractor/internal/httpserver"
	"meeting-task-extractor/pkg/log"
)

// @title       Meeting Task Extractor API
// @description Extracts action items and a follow-up message from meeting notes.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Meeting Task Extractor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Extraction domain
	extractionUC, err := bootstrap.NewExtractionUseCase(ctx, cfg, logger, "")
	if err != nil {
		logger.Error(ctx, "Failed to initialize extraction: ", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		RateLimitPerMin:   cfg.HTTPServer.RateLimitPerMin,
		ExtractionUseCase: extractionUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run until SIGINT/SIGTERM
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
