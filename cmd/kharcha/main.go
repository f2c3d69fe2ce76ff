package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"kharcha/internal/cli"
	applog "kharcha/internal/log"
	"kharcha/internal/services"
	"kharcha/internal/ui"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(logger)

	if level, err := cfg.SlogLevel(); err == nil {
		logger = cli.SetupLogger(level)
	}

	result := cli.OpenBackend(logger, cfg)
	defer func() {
		if err := result.Cleanup(); err != nil {
			logger.Error("Backend cleanup failed", applog.FieldError, err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session := services.NewSession(result.KV, logger)
	session.Hydrate(ctx)

	logger.Info("Session ready",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldBackend, cfg.DataBackend,
		applog.FieldCount, len(session.Expenses()))

	console := ui.NewConsole(session, os.Stdin, os.Stdout, logger)
	if err := console.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Console error", applog.FieldError, err)
		os.Exit(1)
	}
}
