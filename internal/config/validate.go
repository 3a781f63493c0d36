package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBundle(); err != nil {
		return err
	}
	if err := c.validateThresholds(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBundle() error {
	if c.Bundle.Root == "" {
		return errors.New("bundle.root must be set")
	}
	fields := []struct {
		key   string
		value string
	}{
		{"bundle.html", c.Bundle.HTML},
		{"bundle.headers", c.Bundle.Headers},
		{"bundle.redirects", c.Bundle.Redirects},
		{"bundle.routing", c.Bundle.Routing},
		{"bundle.robots", c.Bundle.Robots},
		{"bundle.notes", c.Bundle.Notes},
	}
	seen := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%s must be set", f.key)
		}
		if other, ok := seen[f.value]; ok {
			return fmt.Errorf("%s duplicates %s (%q)", f.key, other, f.value)
		}
		seen[f.value] = f.key
	}
	return nil
}

func (c *Config) validateThresholds() error {
	if c.Thresholds.SizeWarnBytes <= 0 {
		return errors.New("thresholds.size_warn_bytes must be positive")
	}
	if c.Thresholds.SizeFailBytes <= c.Thresholds.SizeWarnBytes {
		return errors.New("thresholds.size_fail_bytes must be greater than thresholds.size_warn_bytes")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
