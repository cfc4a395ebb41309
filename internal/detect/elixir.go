package detect

import "regexp"

// Elixir idioms: config :sentry, dsn: "..." in config/*.exs. A value built
// from System.get_env/fetch_env! never starts with a quote; #{} string
// interpolation is rejected by literal().
var exRules = []valueRule{
	{re: regexp.MustCompile(`\bdsn:\s*`), quotes: `"`},
}

var elixirDetector = Detector{
	Name:       "Elixir",
	Extensions: []string{".ex", ".exs"},
	SkipDirs:   []string{"_build", "deps"},
	Extract: func(text string) (string, bool) {
		return scanLines(text, exRules)
	},
}
