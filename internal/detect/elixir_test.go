package detect

import "testing"

func TestElixirConfigLiteral(t *testing.T) {
	src := `
config :sentry,
  dsn: "https://abc123@o456.ingest.sentry.io/789",
  environment_name: :prod
`
	v, ok := elixirDetector.Extract(src)
	if !ok || v != "https://abc123@o456.ingest.sentry.io/789" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestElixirGetEnvRejected(t *testing.T) {
	src := `config :sentry, dsn: System.get_env("SENTRY_DSN")`
	if v, ok := elixirDetector.Extract(src); ok {
		t.Fatalf("System.get_env must not extract, got %q", v)
	}
}
