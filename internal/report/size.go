package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatBytes renders a byte count with digit grouping and its size in KiB,
// e.g. "97,000 bytes (94.7KB)".
func FormatBytes(n int64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d bytes (%.1fKB)", n, float64(n)/1024)
}

// FormatLimit renders a threshold in thousands of bytes, e.g. 100000 -> "100KB".
func FormatLimit(n int64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%dKB", n/1000)
}
