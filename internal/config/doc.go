// Package config describes the deployment bundle deploycheck inspects.
//
// It supplies the repository defaults for the six tracked file names, the HTML
// size thresholds, and the diagnostic logging knobs. The tool takes no flags,
// environment variables, or config files, so Default is the only source of
// values; ForRoot anchors the layout at a working directory and validates it.
//
// Always obtain settings through this package so the validator, the reporter,
// and the tests agree on file names and thresholds.
package config
