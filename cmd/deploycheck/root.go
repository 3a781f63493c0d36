package main

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"deploycheck/internal/config"
	"deploycheck/internal/logging"
	"deploycheck/internal/report"
	"deploycheck/internal/validator"
)

// errChecksFailed signals a non-zero verdict that has already been reported.
var errChecksFailed = errors.New("deployment checks failed")

const bannerTitle = "Bluehand.Solutions Deployment Validator"

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "deploycheck",
		Short:         "Validate the static-site deployment bundle in the current directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidation(cmd.Context(), "", cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// runValidation validates the bundle rooted at root (the working directory
// when empty), writing the report to out and diagnostics to errOut.
func runValidation(ctx context.Context, root string, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.ForRoot(root)
	if err != nil {
		return err
	}
	logger := logging.NewFromConfig(cfg, errOut)

	console := report.NewConsole(out, cfg.Bundle.Notes)
	console.Banner(bannerTitle)

	tally, err := validator.Run(ctx, cfg, console, logger)
	switch {
	case errors.Is(err, validator.ErrPrimaryMissing):
		console.Critical("HTML file not found. Exiting.")
		return errChecksFailed
	case errors.Is(err, context.Canceled):
		return err
	case err != nil:
		console.Critical(err.Error())
		return errChecksFailed
	}
	if tally.ExitCode() != 0 {
		return errChecksFailed
	}
	return nil
}
