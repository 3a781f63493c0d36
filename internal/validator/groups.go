package validator

import (
	"fmt"

	"deploycheck/internal/bundle"
	"deploycheck/internal/checklist"
	"deploycheck/internal/report"
)

const contactEmail = "hello@bluehand.solutions"

func (v *Validator) checkExistence() {
	for _, file := range v.bundle.Files() {
		v.runner.Check(checklist.Definition{
			Name:   file.Name + " exists",
			Check:  func() bool { return file.Exists },
			Detail: fmt.Sprintf("%s not found", file.Path),
		})
	}
}

func (v *Validator) checkHTMLStructure() {
	v.checkAll(
		checklist.Definition{Name: "DOCTYPE declaration", Check: contains(v.htmlLower, "<!doctype html>"), Detail: "missing <!DOCTYPE html>"},
		checklist.Definition{Name: "HTML lang attribute", Check: contains(v.html, `<html lang="en">`), Detail: `missing <html lang="en">`},
		checklist.Definition{Name: "Charset meta tag", Check: contains(v.htmlLower, `charset="utf-8"`), Detail: "UTF-8 charset not declared"},
		checklist.Definition{Name: "Viewport meta tag", Check: contains(v.htmlLower, "viewport")},
		checklist.Definition{Name: "Title tag present", Check: contains(v.htmlLower, "<title>")},
		checklist.Definition{Name: "Description meta tag", Check: contains(v.htmlLower, `name="description"`)},
	)
}

func (v *Validator) checkSEO() {
	v.checkAll(
		checklist.Definition{Name: "Open Graph tags", Check: contains(v.html, `property="og:`)},
		checklist.Definition{Name: "Twitter Card tags", Check: contains(v.html, `name="twitter:`)},
		checklist.Definition{Name: "Canonical link", Check: contains(v.html, `rel="canonical"`)},
		checklist.Definition{Name: "Structured data (optional)", Check: contains(v.html, "application/ld+json"), Severity: checklist.SeverityWarn},
	)
}

func (v *Validator) checkSecurity() {
	if headers, ok := v.optional(bundle.KindHeaders); ok {
		v.checkAll(
			checklist.Definition{Name: "CSP header", Check: contains(headers, "Content-Security-Policy"), Detail: "Content-Security-Policy not declared"},
			checklist.Definition{Name: "X-Frame-Options", Check: contains(headers, "X-Frame-Options")},
			checklist.Definition{Name: "X-Content-Type-Options", Check: contains(headers, "X-Content-Type-Options")},
		)
	}
	v.checkAll(
		checklist.Definition{Name: "No inline passwords", Check: absent(v.html, inlinePasswordPattern), Detail: "found a password assignment in the HTML"},
		checklist.Definition{Name: "No API keys", Check: absent(v.html, apiKeyPattern), Detail: "found an API key reference in the HTML"},
	)
}

func (v *Validator) checkAccessibility() {
	v.checkAll(
		checklist.Definition{Name: "ARIA labels present", Check: contains(v.html, "aria-label")},
		checklist.Definition{Name: "ARIA hidden attributes", Check: contains(v.html, `aria-hidden="true"`)},
		checklist.Definition{Name: "Role attributes", Check: contains(v.html, "role=")},
		checklist.Definition{Name: "Keyboard navigation support", Check: contains(v.html, "keydown")},
		checklist.Definition{Name: "Skip to main content", Check: containsAny(v.html, "skip-to-main", "skip-link"), Severity: checklist.SeverityWarn},
	)
}

func (v *Validator) checkPerformance() {
	v.checkAll(
		checklist.Definition{Name: "Passive event listeners", Check: contains(v.html, "passive:true")},
		checklist.Definition{Name: "Reduced motion support", Check: contains(v.html, "prefers-reduced-motion")},
		checklist.Definition{Name: "will-change hint", Check: contains(v.html, "will-change")},
		checklist.Definition{Name: "Deferred scripts", Check: func() bool { return deferredScripts(v.html) }},
	)
}

func (v *Validator) checkContent() {
	v.checkAll(
		checklist.Definition{Name: "Email contact present", Check: contains(v.html, contactEmail), Detail: contactEmail + " not found"},
		checklist.Definition{Name: "Copyright year dynamic", Check: contains(v.html, `id="y"`)},
		checklist.Definition{Name: "Canvas element present", Check: contains(v.html, `<canvas id="bg"`)},
		checklist.Definition{Name: "Modal overlay present", Check: contains(v.html, `id="overlay"`)},
	)
}

func (v *Validator) checkJavaScript() {
	v.checkAll(
		checklist.Definition{Name: "Strict mode", Check: contains(v.html, "'use strict'")},
		checklist.Definition{Name: "Error handling", Check: containsAny(v.html, "try{", "try {")},
		checklist.Definition{Name: "Canvas error boundary", Check: contains(v.html, "canvasError")},
		checklist.Definition{Name: "IIFE pattern", Check: contains(v.html, "(function()")},
	)
}

func (v *Validator) checkFileSize() {
	size := v.bundle.File(bundle.KindHTML).Size
	outcome, detail := sizeBucket(size, v.cfg.Thresholds.SizeWarnBytes, v.cfg.Thresholds.SizeFailBytes)
	v.runner.Record("HTML file size", outcome, detail)
}

// sizeBucket classifies size into exactly one outcome: below warn passes,
// below fail warns, anything else fails.
func sizeBucket(size, warn, fail int64) (checklist.Outcome, string) {
	detail := report.FormatBytes(size)
	switch {
	case size < warn:
		return checklist.OutcomePass, detail + " < " + report.FormatLimit(warn)
	case size < fail:
		return checklist.OutcomeWarning, detail
	default:
		return checklist.OutcomeFail, detail + " >= " + report.FormatLimit(fail)
	}
}

func (v *Validator) checkConfiguration() {
	routing := v.bundle.File(bundle.KindRouting)
	if text, ok := v.optional(bundle.KindRouting); ok {
		v.runner.Check(checklist.Definition{Name: routing.Name + " valid syntax", Check: contains(text, "name = "), Detail: "no name = assignment"})
	}
	robots := v.bundle.File(bundle.KindRobots)
	if text, ok := v.optional(bundle.KindRobots); ok {
		v.runner.Check(checklist.Definition{Name: robots.Name + " has User-agent", Check: contains(text, "User-agent:")})
	}
	redirects := v.bundle.File(bundle.KindRedirects)
	if text, ok := v.optional(bundle.KindRedirects); ok {
		v.runner.Check(checklist.Definition{Name: redirects.Name + " has HTTPS", Check: contains(text, "https://")})
	}
}
