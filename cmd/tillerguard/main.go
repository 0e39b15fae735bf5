package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/skillcoder/tillerguard/internal/app"
	"github.com/skillcoder/tillerguard/internal/config"
	"github.com/skillcoder/tillerguard/internal/infra/appstate"
	"github.com/skillcoder/tillerguard/internal/infra/logging"
	"github.com/skillcoder/tillerguard/internal/infra/pinger"
	"github.com/skillcoder/tillerguard/internal/infra/shutdown"
	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
)

func main() {
	appStart := time.Now()
	// Start listening for signals before any other initialization
	signals := shutdown.Notify()
	ctx := context.Background()

	err := run(ctx, signals, appStart)
	if err != nil {
		attrs := []any{"reason", err}
		if kind, ok := taxonomy.KindOf(err); ok {
			attrs = append(attrs, "kind", kind.String(), "fatal", taxonomy.IsFatal(err))
		}

		slog.ErrorContext(ctx, "failed to run", attrs...)
		// Give the logger some time to flush
		time.Sleep(1 * time.Second)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "bye")
}

func run(ctx context.Context, signals <-chan os.Signal, appStart time.Time) error {
	// .env is optional; real deployments configure through the pod env
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	pingers := pinger.New(logger, cfg.PingerInterval, pinger.WithFailureThreshold(cfg.PingerFailureThreshold))
	appState := appstate.New(logger, appStart, cfg.TerminationFile, signals, pingers)

	application, err := app.New(logger, cfg, appState)
	if err != nil {
		return fmt.Errorf("new application: %w", err)
	}

	return application.Run(ctx)
}
