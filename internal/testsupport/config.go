package testsupport

import (
	"testing"

	"deploycheck/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a validated config rooted at a fresh temp directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg, err := config.ForRoot(t.TempDir())
	if err != nil {
		t.Fatalf("config.ForRoot: %v", err)
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return cfg
}

// WithThresholds overrides the HTML size buckets.
func WithThresholds(warn, fail int64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Thresholds.SizeWarnBytes = warn
		cfg.Thresholds.SizeFailBytes = fail
	}
}

// WithLogLevel overrides the diagnostic log level.
func WithLogLevel(level string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Level = level
	}
}
