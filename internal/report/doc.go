// Package report renders checklist progress and the final verdict for a
// terminal.
//
// Console implements checklist.Reporter. It writes section headers, one status
// line per check, and a summary table followed by deployment guidance or a
// failure notice. ANSI colour is used only when the destination is a
// terminal.
package report
