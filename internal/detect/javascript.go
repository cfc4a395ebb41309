package detect

import "regexp"

// JS/TS SDK idioms: Sentry.init({ dsn: "..." }), "dsn": "..." in JSON-ish
// config, const dsn = "...". Template literals are accepted only when they
// hold no ${...} interpolation; process.env.* never starts with a quote.
var jsRules = []valueRule{
	{re: regexp.MustCompile(`(?i)\b(?:sentry[_-]?)?dsn['"]?\s*[:=]\s*`), quotes: "\"'`"},
}

var jsSkipDirs = []string{"node_modules", "bower_components", ".next", ".nuxt", ".output"}

var javascriptDetector = Detector{
	Name:       "JavaScript",
	Extensions: []string{".js", ".jsx", ".mjs", ".cjs", ".vue", ".svelte"},
	SkipDirs:   jsSkipDirs,
	Extract: func(text string) (string, bool) {
		return scanLines(text, jsRules)
	},
}

// TypeScript shares the JavaScript extraction rules but claims its own
// extensions so provenance names the right ecosystem.
var typescriptDetector = Detector{
	Name:       "TypeScript",
	Extensions: []string{".ts", ".tsx", ".mts", ".cts"},
	SkipDirs:   jsSkipDirs,
	Extract: func(text string) (string, bool) {
		return scanLines(text, jsRules)
	},
}
