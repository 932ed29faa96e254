package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"bloodbank/check"
	"bloodbank/infrastructure/config"
	"bloodbank/infrastructure/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat, "check")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("checking database", zap.String("path", cfg.SQLitePath))
	if !check.Run(context.Background(), os.Stdout, cfg.SQLitePath) {
		_ = logger.Sync()
		os.Exit(1)
	}
}
