package shutdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	defaultShutdownTimeout = 5 * time.Second
)

// Notify returns a channel that will receive SIGTERM and SIGINT signals.
// Call it first in main so no signal is lost during session bring-up.
func Notify() <-chan os.Signal {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)

	return signals
}

// WaitForQuit blocks until a termination signal arrives or ctx is done,
// cancelling the session context in the former case.
func WaitForQuit(ctx context.Context, logger *slog.Logger, q quiter, cancel context.CancelFunc) {
	select {
	case <-ctx.Done():
		logger.DebugContext(ctx, "signal watcher stopped", "reason", ctx.Err())

		return
	case sig := <-q.Quit():
		logger.InfoContext(ctx, "received termination signal", "signal", fmt.Sprint(sig))
	}

	cancel()
}

// CheckTerminationFile reports whether the pod has been marked for termination.
func CheckTerminationFile(ctx context.Context, logger *slog.Logger, terminationFile string) bool {
	if terminationFile == "" {
		return false
	}

	_, err := os.Stat(terminationFile)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.ErrorContext(ctx, "error checking termination file",
				"reason", err,
				"path", terminationFile,
			)
		}

		return false
	}

	logger.InfoContext(ctx, "termination file found", "path", terminationFile)

	return true
}

// GracefulShutdown stops the components in reverse registration order,
// so the tiller channel outlives the auditor and servers that use it.
func GracefulShutdown(
	originCtx context.Context,
	logger *slog.Logger,
	shutdowners []Shutdowner,
) error {
	// keep going after the session context is cancelled
	ctx, cancel := context.WithTimeout(context.WithoutCancel(originCtx), defaultShutdownTimeout)
	defer cancel()

	var errs error

	for i := len(shutdowners) - 1; i >= 0; i-- {
		start := time.Now()
		shutdowner := shutdowners[i]
		name := shutdowner.Name()

		if err := shutdowner.Shutdown(ctx); err != nil {
			logger.ErrorContext(ctx, "component shutdown failed",
				"component", name,
				"duration", time.Since(start),
				"reason", err,
			)

			errs = errors.Join(errs, fmt.Errorf("shutdown %s: %w", name, err))

			continue
		}

		logger.InfoContext(ctx, "component shutdown completed",
			"component", name,
			"duration", time.Since(start),
		)
	}

	return errs
}
