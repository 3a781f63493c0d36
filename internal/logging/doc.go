// Package logging assembles the structured slog loggers deploycheck uses for
// diagnostics.
//
// The human-readable checklist report is not logging: it is written by the
// report package to stdout. Loggers built here write to stderr (or any writer
// supplied in Options) and default to the warn level, so a normal run emits no
// log lines at all. Every record carries the run_id of the invocation.
//
// Prefer these constructors over hand-rolled slog setup so records keep the
// same field names and formatting across packages.
package logging
