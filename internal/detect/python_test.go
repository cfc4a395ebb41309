package detect

import "testing"

func TestPythonKeywordLiteral(t *testing.T) {
	src := `
sentry_sdk.init(
    dsn="https://abc123@o456.ingest.sentry.io/789",
    traces_sample_rate=1.0,
)
`
	v, ok := pythonDetector.Extract(src)
	if !ok || v != "https://abc123@o456.ingest.sentry.io/789" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestPythonPositionalLiteral(t *testing.T) {
	src := `sentry_sdk.init("https://abc123@o456.ingest.sentry.io/789")`
	if _, ok := pythonDetector.Extract(src); !ok {
		t.Fatal("expected positional init literal to extract")
	}
}

func TestPythonEnvironRejected(t *testing.T) {
	src := `sentry_sdk.init(dsn=os.environ.get("SENTRY_DSN"))`
	if v, ok := pythonDetector.Extract(src); ok {
		t.Fatalf("os.environ must not extract, got %q", v)
	}
}

func TestPythonFStringRejected(t *testing.T) {
	src := `dsn = f"https://{key}@o456.ingest.sentry.io/789"`
	if v, ok := pythonDetector.Extract(src); ok {
		t.Fatalf("f-string interpolation must not extract, got %q", v)
	}
}
