package detect

import (
	"regexp"
	"strings"
)

// Ruby SDK idioms: config.dsn = '...' inside Sentry.init/Raven.configure
// blocks, plus heredoc values. ENV['SENTRY_DSN'] and ENV.fetch never start
// with a quote and are dropped; #{} interpolation is rejected by literal().
var reRubyDsn = regexp.MustCompile(`(?i)\bdsn\s*=\s*`)

var rubyDetector = Detector{
	Name:       "Ruby",
	Extensions: []string{".rb", ".rake", ".gemspec"},
	SkipDirs:   []string{"vendor", "vendor/bundle", ".bundle", "tmp"},
	Extract:    extractRuby,
}

func extractRuby(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		loc := reRubyDsn.FindStringIndex(line)
		if loc == nil {
			continue
		}
		rest := strings.TrimLeft(line[loc[1]:], " \t")
		if tag, ok := heredocTag(rest); ok {
			if v, ok := heredocBody(lines[i+1:], tag); ok && looksLikeDSN(v) {
				return v, true
			}
			continue
		}
		if v, ok := literal(rest, `"'`, ""); ok && looksLikeDSN(v) {
			return v, true
		}
	}
	return "", false
}

// heredocTag recognizes <<TAG, <<-TAG, <<~TAG and their quoted variants.
func heredocTag(expr string) (string, bool) {
	if !strings.HasPrefix(expr, "<<") {
		return "", false
	}
	s := strings.TrimLeft(expr[2:], "~-")
	s = strings.TrimLeft(s, `"'`)
	j := 0
	for j < len(s) {
		c := s[j]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' {
			j++
			continue
		}
		break
	}
	if j == 0 {
		return "", false
	}
	return s[:j], true
}

// heredocBody accepts only a single-line body: a DSN is one token, so a
// multi-line heredoc is treated as ambiguous and skipped.
func heredocBody(lines []string, tag string) (string, bool) {
	var body []string
	for _, l := range lines {
		if strings.TrimSpace(l) == tag {
			v := strings.TrimSpace(strings.Join(body, "\n"))
			if v == "" || strings.ContainsAny(v, "\n{}$\\") || strings.Contains(v, "#{") {
				return "", false
			}
			return v, true
		}
		body = append(body, l)
	}
	return "", false
}
