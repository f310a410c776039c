package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/console"
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

// run plays until the shell stops and returns the process exit code. Deferred
// cleanup, the telemetry flush included, finishes before main exits.
func run() int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "unable to load .env: %s\n", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load config: %s\n", err)
		return 1
	}

	// stdout belongs to the game
	logger := cfg.Logger(os.Stderr, slog.LevelWarn)

	// Ctrl-C keeps its default behaviour so it can interrupt a blocking read
	// of stdin.
	ctx := context.Background()

	if telemetry.Enabled() {
		flush, err := telemetry.Setup(ctx, "mines", cfg.TelemetryAttributes()...)
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

	shell := console.New(os.Stdin, os.Stdout, cfg.Rand(),
		console.WithPresets(cfg.Presets),
		console.WithLogger(logger),
		console.WithJournal(j),
		console.WithTracer(telemetry.Tracer("console")),
	)
	if err := shell.Run(ctx); err != nil {
		logger.Error("game stopped", slog.Any("error", err))
		return 1
	}
	return 0
}
