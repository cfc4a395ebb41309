package detect

import "testing"

func TestLiteralBasic(t *testing.T) {
	v, ok := literal(`"https://k@h/1", extra`, `"'`, "")
	if !ok || v != "https://k@h/1" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestLiteralPrefix(t *testing.T) {
	if _, ok := literal(`@"https://k@h/1"`, `"`, "@"); !ok {
		t.Fatal("prefix literal should extract")
	}
}

func TestLiteralRejectsUnquoted(t *testing.T) {
	for _, expr := range []string{
		`os.Getenv("SENTRY_DSN")`,
		`process.env.SENTRY_DSN`,
		`ENV['SENTRY_DSN']`,
		``,
		`"unterminated`,
		`""`,
	} {
		if v, ok := literal(expr, `"'`+"`", ""); ok {
			t.Fatalf("%q should not extract, got %q", expr, v)
		}
	}
}

func TestLiteralRejectsInterpolationResidue(t *testing.T) {
	for _, expr := range []string{
		`"https://${key}@h/1"`,
		`"https://#{key}@h/1"`, // braces trip the check even without $
		`"https://\(key)@h/1"`,
		`"https://$key@h/1"`,
	} {
		if v, ok := literal(expr, `"`, ""); ok {
			t.Fatalf("%q should not extract, got %q", expr, v)
		}
	}
}

func TestLooksLikeDSN(t *testing.T) {
	if !looksLikeDSN("https://k@h/1") {
		t.Fatal("expected plausible DSN")
	}
	if looksLikeDSN("hello world") || looksLikeDSN("https://h/1") {
		t.Fatal("expected implausible values to be filtered")
	}
}
