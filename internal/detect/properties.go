package detect

import "strings"

// JVM properties files: dsn=... or sentry.dsn=... lines with an unquoted
// value. ${...} placeholder syntax marks a value resolved elsewhere and is
// rejected here (and again by the validator).
var propertiesDetector = Detector{
	Name:       "Java Properties",
	Extensions: []string{".properties"},
	SkipDirs:   []string{"target", "build"},
	Extract:    extractProperties,
}

func extractProperties(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		eq := strings.IndexAny(line, "=:")
		if eq <= 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(line[:eq]))
		if key != "dsn" && !strings.HasSuffix(key, ".dsn") {
			continue
		}
		val := strings.TrimSpace(line[eq+1:])
		if val == "" || strings.ContainsAny(val, "{}$") {
			continue
		}
		if looksLikeDSN(val) {
			return val, true
		}
	}
	return "", false
}
