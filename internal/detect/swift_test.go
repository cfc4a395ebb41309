package detect

import "testing"

func TestSwiftStartLiteral(t *testing.T) {
	src := `
SentrySDK.start { options in
    options.dsn = "https://abc123@o456.ingest.sentry.io/789"
    options.debug = true
}
`
	v, ok := swiftDetector.Extract(src)
	if !ok || v != "https://abc123@o456.ingest.sentry.io/789" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestObjCStringLiteral(t *testing.T) {
	src := `options.dsn = @"https://abc123@o456.ingest.sentry.io/789";`
	if _, ok := swiftDetector.Extract(src); !ok {
		t.Fatal("expected ObjC string literal to extract")
	}
}

func TestSwiftInterpolationRejected(t *testing.T) {
	src := `options.dsn = "https://\(key)@o456.ingest.sentry.io/789"`
	if v, ok := swiftDetector.Extract(src); ok {
		t.Fatalf("interpolation must not extract, got %q", v)
	}
}

func TestSwiftProcessInfoRejected(t *testing.T) {
	src := `options.dsn = ProcessInfo.processInfo.environment["SENTRY_DSN"]`
	if v, ok := swiftDetector.Extract(src); ok {
		t.Fatalf("ProcessInfo lookup must not extract, got %q", v)
	}
}
