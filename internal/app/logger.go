package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/material-tracker/internal/config"
)

// NewLogger builds the tracker's process-wide logger from LogConfig and
// installs it as the slog default, so handler and adapter code that logs
// through scoped child loggers and stray slog calls both end up on stderr.
//
// The json format is what log shipping in deployment expects; text adds
// source locations for reading logs during local development. A level that
// parseLevel does not recognize falls back to info, so a typo in LOG_LEVEL
// never silences the service.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
