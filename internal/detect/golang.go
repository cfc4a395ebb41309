package detect

import "regexp"

// Go SDK idioms: sentry.Init(sentry.ClientOptions{Dsn: "..."}) and plain
// dsn assignments. Raw (backtick) strings count as literals; an RHS like
// os.Getenv("SENTRY_DSN") never starts with a quote and is dropped.
var goRules = []valueRule{
	{re: regexp.MustCompile(`\bDsn\s*:\s*`), quotes: "\"`"},
	{re: regexp.MustCompile(`\b[Dd]sn\s*:?=\s*`), quotes: "\"`"},
}

var golangDetector = Detector{
	Name:       "Go",
	Extensions: []string{".go"},
	SkipDirs:   []string{"vendor", "testdata"},
	Extract: func(text string) (string, bool) {
		return scanLines(text, goRules)
	},
}
