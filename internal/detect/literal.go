package detect

import (
	"regexp"
	"strings"
)

// valueRule anchors a DSN value slot. When re matches a line, the text after
// the match is classified: a leading string literal is extracted, anything
// else (a variable, an env lookup, a function call) is rejected wholesale.
// That asymmetry is what keeps environment-sourced DSNs out of the results.
type valueRule struct {
	re     *regexp.Regexp // must consume the line up to the value expression
	quotes string         // accepted opening quote characters
	prefix string         // optional marker allowed before the quote, e.g. "@" for ObjC/C# strings
}

// literal parses a leading string literal out of expr. It rejects literals
// containing interpolation or escape residue: a real DSN never holds braces,
// dollar signs, hashes-in-braces, or backslashes.
func literal(expr, quotes, prefix string) (string, bool) {
	expr = strings.TrimLeft(expr, " \t")
	if prefix != "" {
		expr = strings.TrimPrefix(expr, prefix)
	}
	if expr == "" {
		return "", false
	}
	q := expr[0]
	if !strings.ContainsRune(quotes, rune(q)) {
		return "", false
	}
	rest := expr[1:]
	end := strings.IndexByte(rest, q)
	if end <= 0 {
		return "", false
	}
	inner := rest[:end]
	if strings.ContainsAny(inner, "{}$\\") {
		return "", false
	}
	return inner, true
}

// looksLikeDSN is a cheap pre-filter so a detector can keep scanning past
// empty or unrelated values; full validation happens in the dsn package.
func looksLikeDSN(s string) bool {
	return strings.Contains(s, "://") && strings.Contains(s, "@")
}

// scanLines applies rules line by line and returns the first plausible
// literal. Rules are tried in order on each line.
func scanLines(text string, rules []valueRule) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		for _, r := range rules {
			loc := r.re.FindStringIndex(line)
			if loc == nil {
				continue
			}
			v, ok := literal(line[loc[1]:], r.quotes, r.prefix)
			if !ok || !looksLikeDSN(v) {
				continue
			}
			return v, true
		}
	}
	return "", false
}
