package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testProperties = `
app:
  name: ${TEST_APP_NAME:go-weather}
  server:
    port: ${TEST_SERVER_PORT:8080}
  forecast:
    base-url: http://${TEST_FORECAST_HOST:localhost}:9000
    api-key: ${TEST_FORECAST_KEY:}
    timeout: 10s
  rate-limit:
    requests-per-second: ${TEST_RPS:2.5}
    burst: 20
`

func writeProperties(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(testProperties), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}
	return path
}

func TestInitResolvesPlaceholders(t *testing.T) {
	t.Setenv("TEST_SERVER_PORT", "9090")
	t.Setenv("TEST_FORECAST_HOST", "upstream")

	if err := Init(writeProperties(t)); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"app.name", "go-weather"},
		{"app.server.port", "9090"},
		{"app.forecast.base-url", "http://upstream:9000"},
		{"app.forecast.api-key", ""},
	}
	for _, tt := range tests {
		if got := GetString(tt.key); got != tt.want {
			t.Errorf("GetString(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}

	if got := GetInt("app.server.port"); got != 9090 {
		t.Errorf("GetInt(app.server.port) = %d, want 9090", got)
	}
	if got := GetDuration("app.forecast.timeout"); got != 10*time.Second {
		t.Errorf("GetDuration(app.forecast.timeout) = %v, want 10s", got)
	}
	if got := GetInt("app.rate-limit.burst"); got != 20 {
		t.Errorf("GetInt(app.rate-limit.burst) = %d, want 20", got)
	}
	if got := GetFloat64("app.rate-limit.requests-per-second"); got != 2.5 {
		t.Errorf("GetFloat64(app.rate-limit.requests-per-second) = %v, want 2.5", got)
	}
}

func TestGetStringOrDefault(t *testing.T) {
	if err := Init(writeProperties(t)); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if got := GetStringOrDefault("app.forecast.api-key", "fallback"); got != "fallback" {
		t.Errorf("expected fallback for empty key, got %q", got)
	}
	if got := GetStringOrDefault("app.name", "fallback"); got != "go-weather" {
		t.Errorf("expected configured value, got %q", got)
	}
}

func TestInitMissingFile(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error for missing properties file")
	}
}
