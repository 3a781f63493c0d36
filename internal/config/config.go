package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Bundle names the files that make up a static-site deployment bundle.
// Names are relative to Root.
type Bundle struct {
	Root      string `toml:"root"`
	HTML      string `toml:"html"`
	Headers   string `toml:"headers"`
	Redirects string `toml:"redirects"`
	Routing   string `toml:"routing"`
	Robots    string `toml:"robots"`
	Notes     string `toml:"notes"`
}

// Thresholds contains the HTML size buckets. Sizes below SizeWarnBytes pass,
// sizes below SizeFailBytes warn, anything larger fails.
type Thresholds struct {
	SizeWarnBytes int64 `toml:"size_warn_bytes"`
	SizeFailBytes int64 `toml:"size_fail_bytes"`
}

// Logging contains configuration for diagnostic log output.
type Logging struct {
	Level string `toml:"level"`
}

// Config encapsulates all configuration values for a validation run.
//
// Configuration sections:
//   - Bundle: working directory and the six tracked file names
//   - Thresholds: HTML size buckets
//   - Logging: diagnostic log level (stderr only)
type Config struct {
	Bundle     Bundle     `toml:"bundle"`
	Thresholds Thresholds `toml:"thresholds"`
	Logging    Logging    `toml:"logging"`
}

// ForRoot returns the default configuration anchored at root. An empty root
// resolves to the current working directory.
func ForRoot(root string) (*Config, error) {
	cfg := Default()
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		root = wd
	}
	cfg.Bundle.Root = root
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path joins a bundle file name onto the bundle root.
func (b Bundle) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(b.Root, name)
}

// Names returns the tracked file names in checklist order: the primary HTML
// file first, then headers, redirects, routing config, robots, and notes.
func (b Bundle) Names() []string {
	return []string{b.HTML, b.Headers, b.Redirects, b.Routing, b.Robots, b.Notes}
}
