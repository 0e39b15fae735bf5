package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

const (
	FormatJSON    = "json"
	FormatText    = "text"
	FormatConsole = "console"
)

func New(logFormat, logLevel string) *slog.Logger {
	logger := slog.New(newHandler(os.Stdout, logFormat, parseLevel(logLevel)))

	slog.SetDefault(logger)

	return logger
}

func parseLevel(logLevel string) slog.Level {
	switch logLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
	default:
	}

	return slog.LevelInfo
}

func newHandler(w io.Writer, logFormat string, level slog.Level) slog.Handler {
	switch logFormat {
	case FormatText:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	case FormatConsole:
		// colored output for local runs
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
		})
	case FormatJSON:
	default:
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}
