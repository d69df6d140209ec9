package main

import (
	"log"
	"net"
	"os"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"findwork-assistant/internal/config"
	"findwork-assistant/internal/mcp"
	"findwork-assistant/pkg/logging"
	"findwork-assistant/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	res, err := mcp.BuildResources(cfg, logger)
	if err != nil {
		logger.Error("failed to build resources", "err", err)
		os.Exit(1)
	}

	srv := mcp.NewServer(logger, cfg, res.Assistant)

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("assistant server initialized and starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port))

	if err := srv.Run(); err != nil {
		logger.Error("assistant server exited with error", "err", err)
	} else {
		logger.Info("assistant server stopped")
	}
}
