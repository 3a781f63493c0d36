package bundle

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts raw file bytes to text. A UTF-8 or UTF-16 byte-order mark
// selects the encoding and is stripped; without one the bytes are read as
// UTF-8. Invalid sequences are replaced with U+FFFD.
func Decode(data []byte) string {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}
