package detect

import "testing"

func TestRubyConfigLiteral(t *testing.T) {
	src := `
Sentry.init do |config|
  config.dsn = 'https://abc123@o456.ingest.sentry.io/789'
  config.breadcrumbs_logger = [:active_support_logger]
end
`
	v, ok := rubyDetector.Extract(src)
	if !ok || v != "https://abc123@o456.ingest.sentry.io/789" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestRubyEnvLookupRejected(t *testing.T) {
	src := `
Raven.configure do |config|
  config.dsn = ENV['SENTRY_DSN']
end
`
	if v, ok := rubyDetector.Extract(src); ok {
		t.Fatalf("ENV lookup must not extract, got %q", v)
	}
}

func TestRubyEnvFetchRejected(t *testing.T) {
	src := `config.dsn = ENV.fetch("SENTRY_DSN", nil)`
	if v, ok := rubyDetector.Extract(src); ok {
		t.Fatalf("ENV.fetch must not extract, got %q", v)
	}
}

func TestRubyInterpolationRejected(t *testing.T) {
	src := `config.dsn = "https://#{key}@o456.ingest.sentry.io/789"`
	if v, ok := rubyDetector.Extract(src); ok {
		t.Fatalf("interpolation must not extract, got %q", v)
	}
}

func TestRubyHeredoc(t *testing.T) {
	src := `
config.dsn = <<~DSN
  https://abc123@o456.ingest.sentry.io/789
DSN
`
	v, ok := rubyDetector.Extract(src)
	if !ok || v != "https://abc123@o456.ingest.sentry.io/789" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestRubyMultilineHeredocRejected(t *testing.T) {
	src := `
config.dsn = <<~DSN
  https://abc123@o456.ingest.sentry.io/789
  trailing garbage
DSN
`
	if v, ok := rubyDetector.Extract(src); ok {
		t.Fatalf("multi-line heredoc must not extract, got %q", v)
	}
}
