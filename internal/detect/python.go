package detect

import "regexp"

// Python SDK idioms: sentry_sdk.init("https://...") with a positional DSN,
// or dsn="..." keyword/assignment. f-strings are rejected because the value
// expression starts with the f prefix, not a quote; os.environ lookups are
// rejected the same way.
var pyRules = []valueRule{
	{re: regexp.MustCompile(`(?i)\b(?:sentry_)?dsn\s*=\s*`), quotes: `"'`},
	{re: regexp.MustCompile(`\binit\s*\(\s*`), quotes: `"'`},
}

var pythonDetector = Detector{
	Name:       "Python",
	Extensions: []string{".py"},
	SkipDirs:   []string{".venv", "venv", "__pycache__", ".tox", "site-packages", ".eggs"},
	Extract: func(text string) (string, bool) {
		return scanLines(text, pyRules)
	},
}
