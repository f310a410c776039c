package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/telemetry"
)

var configPath string

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
}

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "unable to load .env: %s\n", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load config: %s\n", err)
		return 1
	}

	level := slog.LevelInfo
	if cfg.Development {
		level = slog.LevelDebug
	}
	logger := cfg.Logger(os.Stderr, level)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if telemetry.Enabled() {
		flush, err := telemetry.Setup(ctx, "minesd", cfg.TelemetryAttributes()...)
		if err != nil {
			logger.Warn("telemetry setup failed", slog.Any("error", err))
		} else {
			defer func() {
				if err := flush(); err != nil {
					logger.Warn("unable to flush telemetry", slog.Any("error", err))
				}
			}()
		}
	}

	j, err := journal.New(cfg.Journal)
	if err != nil {
		logger.Error("failed to open journal", slog.Any("error", err))
		return 1
	}

	a, err := app.New(logger, cfg, j, telemetry.Tracer("session"))
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		return 1
	}

	if err := a.Start(ctx); err != nil {
		logger.Error("failed to serve", slog.Any("error", err))
		return 1
	}
	logger.Info("server stopped")
	return 0
}
