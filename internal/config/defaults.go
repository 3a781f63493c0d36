package config

const (
	defaultHTMLFile      = "index-optimized.html"
	defaultHeadersFile   = "_headers"
	defaultRedirectsFile = "_redirects"
	defaultRoutingFile   = "wrangler.toml"
	defaultRobotsFile    = "robots.txt"
	defaultNotesFile     = "DEPLOYMENT.md"
	defaultSizeWarnBytes = 100_000
	defaultSizeFailBytes = 200_000
	defaultLogLevel      = "warn"
)

// Default returns a Config populated with repository defaults. Root is left
// empty; use ForRoot to anchor it.
func Default() Config {
	return Config{
		Bundle: Bundle{
			HTML:      defaultHTMLFile,
			Headers:   defaultHeadersFile,
			Redirects: defaultRedirectsFile,
			Routing:   defaultRoutingFile,
			Robots:    defaultRobotsFile,
			Notes:     defaultNotesFile,
		},
		Thresholds: Thresholds{
			SizeWarnBytes: defaultSizeWarnBytes,
			SizeFailBytes: defaultSizeFailBytes,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
