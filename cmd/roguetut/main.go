// Package main is the entry point for roguetut.
package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/roguetut/internal/game"
	"github.com/samdwyer/roguetut/internal/telemetry"
)

func main() {
	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "err", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		log.Fatal("Failed to open log file", "file", cfg.LogFile, "err", err)
	}
	defer closeLog()

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - game still works
			logger.Warn("telemetry setup failed, running without tracing", "err", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown failed", "err", err)
				}
			}()
		}
	}

	g, err := game.New(ctx, cfg, logger)
	if err != nil {
		log.Fatal("Failed to initialize game", "err", err)
	}

	if err := g.Run(ctx); err != nil {
		g.Close()
		log.Fatal("Game error", "err", err)
	}
}

// newLogger writes to the configured log file. The terminal belongs to
// the screen, so without a file the log is discarded.
func newLogger(cfg game.Config) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          cfg.Title,
	})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", cfg.LogLevel)
	}
	return logger, closeFn, nil
}
