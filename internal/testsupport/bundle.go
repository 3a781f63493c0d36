package testsupport

import (
	"testing"

	"github.com/pelletier/go-toml/v2"

	"deploycheck/internal/config"
)

// CompleteHTML carries every marker the checklist looks for, including the
// optional structured data and skip link, and nothing it rejects.
const CompleteHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Bluehand.Solutions</title>
<meta name="description" content="Systems that hold under pressure.">
<meta property="og:title" content="Bluehand.Solutions">
<meta name="twitter:card" content="summary_large_image">
<link rel="canonical" href="https://bluehand.solutions/">
<script type="application/ld+json">{"@context":"https://schema.org","@type":"Organization","name":"Bluehand.Solutions"}</script>
<style>
.panel{will-change:transform}
@media (prefers-reduced-motion: reduce){.panel{transition:none}}
</style>
</head>
<body>
<a class="skip-link" href="#main">Skip to main content</a>
<canvas id="bg" aria-hidden="true"></canvas>
<main id="main" role="main">
<button aria-label="Open contact form">Contact</button>
<a href="mailto:hello@bluehand.solutions">hello@bluehand.solutions</a>
</main>
<div id="overlay" role="dialog" aria-hidden="true"></div>
<footer>&copy; <span id="y"></span> Bluehand.Solutions</footer>
<script defer>
(function(){
'use strict';
var canvasError=false;
try{
document.getElementById('y').textContent=new Date().getFullYear();
}catch(e){canvasError=true;}
window.addEventListener('scroll',function(){},{passive:true});
document.addEventListener('keydown',function(e){if(e.key==='Escape'){document.getElementById('overlay').hidden=true;}});
})();
</script>
</body>
</html>
`

// CompleteHeaders declares the three required security headers.
const CompleteHeaders = `/*
  Content-Security-Policy: default-src 'self'
  X-Frame-Options: DENY
  X-Content-Type-Options: nosniff
`

// CompleteRedirects upgrades plain HTTP to HTTPS.
const CompleteRedirects = "http://bluehand.solutions/* https://bluehand.solutions/:splat 301!\n"

// CompleteRobots allows every crawler.
const CompleteRobots = "User-agent: *\nAllow: /\n"

// CompleteNotes is a minimal deployment notes file.
const CompleteNotes = "# Deployment\n\nwrangler pages deploy ./\n"

// WranglerConfig is the subset of a Pages routing config the fixtures emit.
type WranglerConfig struct {
	Name                string `toml:"name"`
	CompatibilityDate   string `toml:"compatibility_date"`
	PagesBuildOutputDir string `toml:"pages_build_output_dir"`
}

// RoutingTOML encodes a routing config with a real TOML encoder.
func RoutingTOML(t testing.TB, wc WranglerConfig) string {
	t.Helper()

	data, err := toml.Marshal(wc)
	if err != nil {
		t.Fatalf("encode routing config: %v", err)
	}
	return string(data)
}

// WriteCompleteBundle writes all six tracked files with content that passes
// every check.
func WriteCompleteBundle(t testing.TB, cfg *config.Config) {
	t.Helper()

	b := cfg.Bundle
	WriteText(t, b.Path(b.HTML), CompleteHTML)
	WriteText(t, b.Path(b.Headers), CompleteHeaders)
	WriteText(t, b.Path(b.Redirects), CompleteRedirects)
	WriteText(t, b.Path(b.Routing), RoutingTOML(t, WranglerConfig{
		Name:                "bluehand-solutions",
		CompatibilityDate:   "2024-09-23",
		PagesBuildOutputDir: "./",
	}))
	WriteText(t, b.Path(b.Robots), CompleteRobots)
	WriteText(t, b.Path(b.Notes), CompleteNotes)
}
