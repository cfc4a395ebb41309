package detect

import "testing"

func TestGoClientOptionsLiteral(t *testing.T) {
	src := `
		err := sentry.Init(sentry.ClientOptions{
			Dsn: "https://abc123@o456.ingest.sentry.io/789",
			TracesSampleRate: 1.0,
		})
	`
	v, ok := golangDetector.Extract(src)
	if !ok {
		t.Fatal("expected a DSN literal")
	}
	if v != "https://abc123@o456.ingest.sentry.io/789" {
		t.Fatalf("got %q", v)
	}
}

func TestGoRawStringLiteral(t *testing.T) {
	src := "dsn := `https://abc123@o456.ingest.sentry.io/789`"
	v, ok := golangDetector.Extract(src)
	if !ok || v != "https://abc123@o456.ingest.sentry.io/789" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestGoEnvLookupRejected(t *testing.T) {
	src := `
		sentry.Init(sentry.ClientOptions{
			Dsn: os.Getenv("SENTRY_DSN"),
		})
	`
	if v, ok := golangDetector.Extract(src); ok {
		t.Fatalf("env lookup must not extract, got %q", v)
	}
}
