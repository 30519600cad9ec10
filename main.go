package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"focuswatch/config"
	"focuswatch/logging"
	"focuswatch/monitoring"
	"focuswatch/sink"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to config file")
	version    = "1.0.0"
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Sync()

	logger.Info("focuswatch starting",
		zap.String("version", version),
		zap.String("run_id", uuid.NewString()),
		zap.Duration("poll_interval", cfg.PollInterval()))

	tracker := monitoring.NewTracker(
		monitoring.NewWindowAPI(),
		monitoring.NewProcessIndex(),
		sink.NewZapSink(logger),
		logger,
		cfg.PollInterval(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		logger.Info("Shutting down...")
		cancel()
	}()

	if err := tracker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Tracker stopped", zap.Error(err))
	}
}
