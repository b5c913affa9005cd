package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a structured logger writing to w at the given level.
// Pipeline progress and per-file degradations go here, never into the
// JSON artifacts, so reports stay byte-identical across runs.
func New(w io.Writer, level string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewDiscard creates a logger that drops everything. Used in tests and
// as the fallback when no logger is supplied.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
