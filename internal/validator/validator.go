package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"deploycheck/internal/bundle"
	"deploycheck/internal/checklist"
	"deploycheck/internal/config"
	"deploycheck/internal/logging"
)

// ErrPrimaryMissing reports that the bundle has no HTML file to validate.
var ErrPrimaryMissing = errors.New("primary HTML file not found")

// Validator evaluates the checklist for one bundle.
type Validator struct {
	cfg    *config.Config
	bundle *bundle.Bundle
	runner *checklist.Runner
	logger *slog.Logger

	html      string
	htmlLower string
}

type group struct {
	title string
	run   func(*Validator)
}

func groups() []group {
	return []group{
		{"HTML Validation", (*Validator).checkHTMLStructure},
		{"SEO Checks", (*Validator).checkSEO},
		{"Security Checks", (*Validator).checkSecurity},
		{"Accessibility Checks", (*Validator).checkAccessibility},
		{"Performance Checks", (*Validator).checkPerformance},
		{"Content Checks", (*Validator).checkContent},
		{"JavaScript Checks", (*Validator).checkJavaScript},
		{"File Size Checks", (*Validator).checkFileSize},
		{"Configuration Validation", (*Validator).checkConfiguration},
	}
}

// Run executes the full checklist against the bundle described by cfg and
// reports through reporter. The summary is reported only when every group
// ran. The returned tally drives the exit code.
func Run(ctx context.Context, cfg *config.Config, reporter checklist.Reporter, logger *slog.Logger) (checklist.Tally, error) {
	if cfg == nil {
		return checklist.Tally{}, errors.New("validator: config is required")
	}
	v := &Validator{
		cfg:    cfg,
		bundle: bundle.Locate(cfg.Bundle, logger),
		runner: checklist.NewRunner(reporter, logger),
		logger: logging.NewComponentLogger(logger, "validator"),
	}
	return v.run(ctx)
}

func (v *Validator) run(ctx context.Context) (checklist.Tally, error) {
	v.runner.Section("1. File Existence Checks")
	v.checkExistence()

	primary := v.bundle.File(bundle.KindHTML)
	if !primary.Exists {
		return v.runner.Tally(), fmt.Errorf("%s: %w", primary.Path, ErrPrimaryMissing)
	}
	html, err := v.bundle.Load(bundle.KindHTML)
	if err != nil {
		return v.runner.Tally(), fmt.Errorf("load primary HTML: %w", err)
	}
	v.setHTML(html)

	for i, g := range groups() {
		if err := ctx.Err(); err != nil {
			return v.runner.Tally(), err
		}
		v.runner.Section(fmt.Sprintf("%d. %s", i+2, g.title))
		g.run(v)
	}

	v.runner.Finalize()
	return v.runner.Tally(), nil
}

func (v *Validator) setHTML(html string) {
	v.html = html
	v.htmlLower = lowerASCII(html)
}

// optional loads an optional file. A missing or unreadable file records one
// warning and reports false so the caller skips its dependent checks.
func (v *Validator) optional(kind bundle.Kind) (string, bool) {
	file := v.bundle.File(kind)
	if !file.Exists {
		v.runner.Skip(file.Name + " file missing")
		return "", false
	}
	text, err := v.bundle.Load(kind)
	if err != nil {
		v.logger.Warn("optional bundle file unreadable; skipping dependent checks",
			logging.String(logging.FieldPath, file.Path),
			logging.Error(err),
		)
		v.runner.Skip(file.Name + " file unreadable")
		return "", false
	}
	return text, true
}

func (v *Validator) checkAll(defs ...checklist.Definition) {
	for _, def := range defs {
		v.runner.Run(def)
	}
}
