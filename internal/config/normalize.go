package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeBundle(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeBundle() error {
	root := strings.TrimSpace(c.Bundle.Root)
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("bundle.root: %w", err)
		}
		c.Bundle.Root = abs
	}
	c.Bundle.HTML = strings.TrimSpace(c.Bundle.HTML)
	c.Bundle.Headers = strings.TrimSpace(c.Bundle.Headers)
	c.Bundle.Redirects = strings.TrimSpace(c.Bundle.Redirects)
	c.Bundle.Routing = strings.TrimSpace(c.Bundle.Routing)
	c.Bundle.Robots = strings.TrimSpace(c.Bundle.Robots)
	c.Bundle.Notes = strings.TrimSpace(c.Bundle.Notes)
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
