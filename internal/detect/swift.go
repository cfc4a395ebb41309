package detect

import "regexp"

// Swift and Objective-C idioms: options.dsn = "..." inside SentrySDK.start,
// and options.dsn = @"..." in ObjC. ProcessInfo environment lookups never
// start with a quote; Swift \() interpolation is rejected by the backslash
// check in literal().
var swiftRules = []valueRule{
	{re: regexp.MustCompile(`(?i)\bdsn\s*=\s*`), quotes: `"`, prefix: "@"},
}

var swiftDetector = Detector{
	Name:       "Swift",
	Extensions: []string{".swift", ".m", ".mm"},
	SkipDirs:   []string{"Pods", ".build", "DerivedData", "Carthage"},
	Extract: func(text string) (string, bool) {
		return scanLines(text, swiftRules)
	},
}
