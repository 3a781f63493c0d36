package validator

import (
	"regexp"
	"strings"
)

var (
	inlinePasswordPattern = regexp.MustCompile(`(?i)password\s*=`)
	apiKeyPattern         = regexp.MustCompile(`(?i)api[_-]key`)
)

// lowerASCII folds A-Z only. Non-ASCII letters are left as they are, so a
// dotted capital I never turns into a plain "i" and satisfies a marker.
func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func contains(text, marker string) func() bool {
	return func() bool { return strings.Contains(text, marker) }
}

func containsAny(text string, markers ...string) func() bool {
	return func() bool {
		for _, m := range markers {
			if strings.Contains(text, m) {
				return true
			}
		}
		return false
	}
}

func absent(text string, pattern *regexp.Regexp) func() bool {
	return func() bool { return !pattern.MatchString(text) }
}

// deferredScripts passes when the document has no </head>, when "defer"
// appears anywhere, or when a bare <script> tag sits between the first
// </head> and the next one.
func deferredScripts(html string) bool {
	_, after, found := strings.Cut(html, "</head>")
	if !found {
		return true
	}
	if strings.Contains(html, "defer") {
		return true
	}
	body, _, _ := strings.Cut(after, "</head>")
	return strings.Contains(body, "<script>")
}
