// Package checklist runs an ordered list of boolean checks and tallies their
// outcomes.
//
// A Runner owns one Tally for one run. Check (FAIL on false) and Advise
// (WARNING on false) evaluate a Definition; Skip records a warning for a
// precondition that was not met; Record counts an outcome computed elsewhere.
// Every call contributes to exactly one counter, and Finalize turns the tally
// into a process exit code: 0 when nothing failed, 1 otherwise.
//
// Rendering is delegated to a Reporter so the runner stays free of terminal
// concerns.
package checklist
