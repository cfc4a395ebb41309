package detect

// Kotlin reuses the Java rules: setDsn("..."), Sentry.init, and the
// options.dsn = "..." property syntax used inside init blocks. String
// templates ("https://$key@...") are rejected by the $ check in literal().
var kotlinDetector = Detector{
	Name:       "Kotlin",
	Extensions: []string{".kt", ".kts"},
	SkipDirs:   []string{"build", ".gradle", "out"},
	Extract: func(text string) (string, bool) {
		return scanLines(text, javaRules)
	},
}
