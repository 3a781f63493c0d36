// Package validator holds the fixed deployment checklist.
//
// Run locates the bundle, performs the six existence checks, and aborts with
// ErrPrimaryMissing when the HTML file is absent. Otherwise it loads the HTML
// once and walks the remaining nine groups in order: HTML structure, SEO,
// security, accessibility, performance, content, JavaScript, file size, and
// configuration. Groups that depend on an optional file record a single
// warning when that file is missing and skip only their dependent checks.
//
// The checks are deliberately loose substring and regular-expression tests.
// They are not an HTML or TOML parser, and their false positives are part of
// the contract.
package validator
