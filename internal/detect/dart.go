package detect

import "regexp"

// Dart/Flutter idioms: options.dsn = '...' inside SentryFlutter.init.
// String.fromEnvironment and Platform.environment lookups never start with
// a quote; $interpolation is rejected by literal().
var dartRules = []valueRule{
	{re: regexp.MustCompile(`(?i)\bdsn\s*=\s*`), quotes: `"'`},
}

var dartDetector = Detector{
	Name:       "Dart",
	Extensions: []string{".dart"},
	SkipDirs:   []string{".dart_tool", "build", ".pub-cache"},
	Extract: func(text string) (string, bool) {
		return scanLines(text, dartRules)
	},
}
