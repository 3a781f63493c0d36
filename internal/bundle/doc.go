// Package bundle locates and reads the files of a static-site deployment
// bundle.
//
// Locate stats the six tracked files once. Load reads a file fully on first
// use and decodes it tolerantly: a byte-order mark selects UTF-8 or UTF-16,
// and invalid sequences become U+FFFD instead of errors, so malformed content
// turns into ordinary failed substring checks rather than a crash.
package bundle
