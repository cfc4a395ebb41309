package detect

import "testing"

func TestCSharpOptionsLiteral(t *testing.T) {
	src := `
SentrySdk.Init(o =>
{
    o.Dsn = "https://abc123@o456.ingest.sentry.io/789";
    o.Debug = true;
});
`
	v, ok := csharpDetector.Extract(src)
	if !ok || v != "https://abc123@o456.ingest.sentry.io/789" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestCSharpVerbatimString(t *testing.T) {
	src := `o.Dsn = @"https://abc123@o456.ingest.sentry.io/789";`
	if _, ok := csharpDetector.Extract(src); !ok {
		t.Fatal("expected verbatim string to extract")
	}
}

func TestCSharpEnvironmentRejected(t *testing.T) {
	src := `o.Dsn = Environment.GetEnvironmentVariable("SENTRY_DSN");`
	if v, ok := csharpDetector.Extract(src); ok {
		t.Fatalf("environment lookup must not extract, got %q", v)
	}
}

func TestCSharpInterpolatedRejected(t *testing.T) {
	src := `o.Dsn = $"https://{key}@o456.ingest.sentry.io/789";`
	if v, ok := csharpDetector.Extract(src); ok {
		t.Fatalf("interpolated string must not extract, got %q", v)
	}
}
