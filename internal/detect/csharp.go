package detect

import "regexp"

// .NET SDK idioms: o.Dsn = "..." in SentrySdk.Init and UseSentry callbacks,
// plus the legacy new Dsn("...") constructor. Verbatim @"..." strings are
// allowed via the prefix; interpolated $"..." strings never reach the quote
// check because of the leading $. Environment.GetEnvironmentVariable is
// dropped like any other non-literal RHS.
var csRules = []valueRule{
	{re: regexp.MustCompile(`\bDsn\s*=\s*`), quotes: `"`, prefix: "@"},
	{re: regexp.MustCompile(`\bnew\s+Dsn\s*\(\s*`), quotes: `"`, prefix: "@"},
}

var csharpDetector = Detector{
	Name:       "C#",
	Extensions: []string{".cs", ".cshtml", ".razor"},
	SkipDirs:   []string{"bin", "obj", "packages"},
	Extract: func(text string) (string, bool) {
		return scanLines(text, csRules)
	},
}
