package detect

import "regexp"

// PHP SDK idioms: \Sentry\init(['dsn' => '...']), $dsn = '...', and Laravel
// config arrays. getenv()/$_ENV expressions never start with a quote; a
// double-quoted "https://$key@..." is rejected by the $ check in literal().
var phpRules = []valueRule{
	{re: regexp.MustCompile(`(?i)['"]dsn['"]\s*=>\s*`), quotes: `"'`},
	{re: regexp.MustCompile(`(?i)\$dsn\s*=\s*`), quotes: `"'`},
	{re: regexp.MustCompile(`(?i)\bdsn\s*=\s*`), quotes: `"'`},
}

var phpDetector = Detector{
	Name:       "PHP",
	Extensions: []string{".php"},
	SkipDirs:   []string{"vendor", "storage"},
	Extract: func(text string) (string, bool) {
		return scanLines(text, phpRules)
	},
}
