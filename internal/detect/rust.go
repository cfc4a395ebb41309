package detect

import "regexp"

// Rust SDK idioms: sentry::init(("https://...", options)) with the DSN as
// the first tuple element, or dsn: "...".parse() in ClientOptions. env::var
// lookups never start with a quote and are dropped.
var rsRules = []valueRule{
	{re: regexp.MustCompile(`(?i)\bdsn\s*[:=]\s*`), quotes: `"`},
	{re: regexp.MustCompile(`\bsentry::init\s*\(\s*\(?\s*`), quotes: `"`},
}

var rustDetector = Detector{
	Name:       "Rust",
	Extensions: []string{".rs"},
	SkipDirs:   []string{"target"},
	Extract: func(text string) (string, bool) {
		return scanLines(text, rsRules)
	},
}
