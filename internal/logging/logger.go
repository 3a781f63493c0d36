package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"deploycheck/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Output io.Writer
	RunID  string
}

// New constructs a console slog logger. A missing Output defaults to stderr;
// a missing RunID is generated. Every record carries the run id.
func New(opts Options) *slog.Logger {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	runID := strings.TrimSpace(opts.RunID)
	if runID == "" {
		runID = NewRunID()
	}
	handler := newPrettyHandler(output, levelVar, level <= slog.LevelDebug)
	return slog.New(handler).With(String(FieldRunID, runID))
}

// NewFromConfig creates a logger at the configured level.
func NewFromConfig(cfg *config.Config, output io.Writer) *slog.Logger {
	if cfg == nil {
		return New(Options{Output: output})
	}
	return New(Options{Level: cfg.Logging.Level, Output: output})
}

// NewRunID returns a fresh identifier for one validation run.
func NewRunID() string {
	return uuid.NewString()
}

// parseLevel maps a configured level name onto slog; unknown names fall back
// to warn, which config.Validate rejects earlier anyway.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
