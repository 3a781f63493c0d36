// Package main hosts the deploycheck CLI entrypoint.
//
// The single Cobra command validates the deployment bundle in the current
// working directory. It takes no arguments and no flags: configuration comes
// from internal/config defaults, the checklist from internal/validator, and
// rendering from internal/report. The process exits 0 when no check failed
// and 1 otherwise, including when the primary HTML file is missing.
package main
