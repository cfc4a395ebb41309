package detect

import "testing"

func TestPropertiesDottedKey(t *testing.T) {
	src := `
# Sentry configuration
sentry.dsn=https://abc123@o456.ingest.sentry.io/789
sentry.environment=production
`
	v, ok := propertiesDetector.Extract(src)
	if !ok || v != "https://abc123@o456.ingest.sentry.io/789" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestPropertiesColonSeparator(t *testing.T) {
	src := `dsn: https://abc123@o456.ingest.sentry.io/789`
	if _, ok := propertiesDetector.Extract(src); !ok {
		t.Fatal("expected colon-separated value to extract")
	}
}

func TestPropertiesPlaceholderRejected(t *testing.T) {
	src := `sentry.dsn=${SENTRY_DSN}`
	if v, ok := propertiesDetector.Extract(src); ok {
		t.Fatalf("placeholder must not extract, got %q", v)
	}
}

func TestPropertiesKeySuffixOnly(t *testing.T) {
	src := `mydsn=https://abc123@o456.ingest.sentry.io/789`
	if v, ok := propertiesDetector.Extract(src); ok {
		t.Fatalf("non-dsn key must not extract, got %q", v)
	}
}
