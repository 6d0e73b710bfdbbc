package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"

	"blackbeard/internal/config"
	"blackbeard/internal/daemon"
	"blackbeard/internal/ipc"
	"blackbeard/internal/logging"
	"blackbeard/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		log.Fatalf("blackbeardd: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, _, _, err := config.Load("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("ensure directories: %w", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	logging.CleanupOldLogs(logger, cfg.Paths.LogDir, cfg.Logging.RetentionDays)

	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	d, err := daemon.New(cfg, st, logger)
	if err != nil {
		st.Close()
		return fmt.Errorf("create daemon: %w", err)
	}
	defer d.Close()

	ipcServer, err := ipc.NewServer(ctx, buildSocketPath(cfg), d, logger)
	if err != nil {
		return fmt.Errorf("start ipc server: %w", err)
	}
	defer ipcServer.Close()
	ipcServer.Serve()

	if err := d.Start(ctx); err != nil {
		return fmt.Errorf("daemon start: %w", err)
	}

	<-ctx.Done()
	logger.Info("blackbeardd shutting down")
	return nil
}

func buildSocketPath(cfg *config.Config) string {
	logDir := ""
	if cfg != nil {
		logDir = cfg.Paths.LogDir
	}
	return filepath.Join(logDir, "blackbeard.sock")
}
