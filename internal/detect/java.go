package detect

import "regexp"

// Java SDK idioms: options.setDsn("..."), Sentry.init("...") with a
// positional DSN, and builder-style dsn = assignments in Groovy/Gradle
// config. System.getenv(...) never starts with a quote and is dropped.
var javaRules = []valueRule{
	{re: regexp.MustCompile(`\bsetDsn\s*\(\s*`), quotes: `"'`},
	{re: regexp.MustCompile(`\bSentry\.init\s*\(\s*`), quotes: `"'`},
	{re: regexp.MustCompile(`(?i)\bdsn\s*=\s*`), quotes: `"'`},
}

var javaDetector = Detector{
	Name:       "Java",
	Extensions: []string{".java", ".groovy", ".gradle"},
	SkipDirs:   []string{"target", "build", ".gradle", "out"},
	Extract: func(text string) (string, bool) {
		return scanLines(text, javaRules)
	},
}
