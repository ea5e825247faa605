package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campus-advisor/config"
	"campus-advisor/internal/app"
	chatNATS "campus-advisor/internal/chat/delivery/nats"
	"campus-advisor/pkg/log"
)

// main serves chat requests arriving over NATS request/reply. It shares
// storage and use cases with cmd/api; run as many replicas as needed, they
// share one queue group.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting chat consumer...")

	if cfg.NATS.URL == "" {
		logger.Error(ctx, "NATS_URL is required for the consumer")
		return
	}

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		return
	}
	defer a.Close()

	conn, err := chatNATS.Connect(cfg.NATS.URL, "campus-advisor-consumer", cfg.NATS.Timeout)
	if err != nil {
		logger.Error(ctx, "Failed to connect to NATS: ", err)
		return
	}
	defer conn.Close()
	logger.Infof(ctx, "Connected to NATS server: %s", cfg.NATS.URL)

	consumer := chatNATS.New(conn, a.Chat, logger, chatNATS.Config{
		Subject:    cfg.NATS.Subject,
		QueueGroup: cfg.NATS.QueueGroup,
		Timeout:    cfg.NATS.Timeout,
	})
	if err := consumer.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start consumer: ", err)
		return
	}

	<-ctx.Done()
	logger.Info(context.Background(), "Shutting down consumer...")
	drainCtx, cancel := context.WithTimeout(context.Background(), cfg.NATS.Timeout)
	defer cancel()
	if err := consumer.Drain(drainCtx); err != nil {
		logger.Warnf(context.Background(), "Drain: %v", err)
	}
	logger.Info(context.Background(), "Consumer stopped gracefully")
}
