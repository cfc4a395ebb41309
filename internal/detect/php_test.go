package detect

import "testing"

func TestPHPArrayLiteral(t *testing.T) {
	src := `\Sentry\init(['dsn' => 'https://abc123@o456.ingest.sentry.io/789']);`
	v, ok := phpDetector.Extract(src)
	if !ok || v != "https://abc123@o456.ingest.sentry.io/789" {
		t.Fatalf("got %q, %v", v, ok)
	}
}

func TestPHPGetenvRejected(t *testing.T) {
	src := `$dsn = getenv('SENTRY_DSN');`
	if v, ok := phpDetector.Extract(src); ok {
		t.Fatalf("getenv must not extract, got %q", v)
	}
}

func TestPHPEnvHelperRejected(t *testing.T) {
	src := `'dsn' => env('SENTRY_LARAVEL_DSN'),`
	if v, ok := phpDetector.Extract(src); ok {
		t.Fatalf("env() helper must not extract, got %q", v)
	}
}

func TestPHPInterpolationRejected(t *testing.T) {
	src := `$dsn = "https://$publicKey@o456.ingest.sentry.io/789";`
	if v, ok := phpDetector.Extract(src); ok {
		t.Fatalf("variable interpolation must not extract, got %q", v)
	}
}
