package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campus-advisor/config"
	_ "campus-advisor/docs" // Swagger docs
	"campus-advisor/internal/app"
	"campus-advisor/internal/httpserver"
	"campus-advisor/pkg/log"
)

// @title       Campus Advisor API
// @description Multi-handler student advisor: chat, profiles, advice history, campus resources and study planning.
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

	logger.Info(ctx, "Starting Campus Advisor API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Domains
	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		return
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warnf(context.Background(), "Close: %v", err)
		}
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
		ReadyCheck:      a.DB.PingContext,
		Chat:            a.Chat,
		Profile:         a.Profile,
		Advice:          a.Advice,
		Resource:        a.Resource,
		Planner:         a.Planner,
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
