package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"iffy-moderation/config"
	_ "iffy-moderation/docs" // Swagger docs
	"iffy-moderation/internal/httpserver"
	moderationHTTP "iffy-moderation/internal/moderation/delivery/http"
	moderationRepo "iffy-moderation/internal/moderation/repository/memory"
	moderationUC "iffy-moderation/internal/moderation/usecase"
	"iffy-moderation/pkg/iffy"
	"iffy-moderation/pkg/log"
)

// @title       Iffy Moderation API
// @description Authenticated gateway in front of the Iffy content-moderation API.
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

	logger.Info(ctx, "Starting Iffy moderation gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Iffy URL: %s", cfg.Iffy.BaseURL)

	// 3. Iffy client
	iffyClient, err := iffy.New(iffy.Config{
		APIKey:     cfg.Iffy.APIKey,
		BaseURL:    cfg.Iffy.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Iffy.Timeout},
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Iffy client: %v", err)
	}

	// 4. Moderation domain
	repo := moderationRepo.New(cfg.History.Size, cfg.History.TTL, logger)
	uc := moderationUC.New(repo, iffyClient, logger)
	handler := moderationHTTP.New(logger, uc)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		AuthToken:         cfg.HTTPServer.AuthToken,
		Upstream:          iffyClient.BaseURL(),
		ModerationHandler: handler,
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
