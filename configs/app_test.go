package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-weather/pkg/resource"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write properties: %v", err)
	}
	return path
}

func TestLoadAppConfigFromRepositoryFile(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("FORECAST_DAY_KEY", "calendar-date")

	if err := resource.Init("application.yml"); err != nil {
		t.Fatalf("failed to load properties: %v", err)
	}

	cfg, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Forecast.APIKey != "secret" || cfg.Forecast.DayKey != "calendar-date" {
		t.Errorf("environment overrides not applied: %+v", cfg.Forecast)
	}
	if cfg.Forecast.BaseURL != "https://api.openweathermap.org" || cfg.Forecast.Timeout != 10*time.Second {
		t.Errorf("unexpected forecast defaults: %+v", cfg.Forecast)
	}
	if cfg.ContextPath != "/api" || cfg.Port != "8080" || cfg.DefaultCity != "Copenhagen" {
		t.Errorf("unexpected server defaults: %+v", cfg)
	}
	if cfg.RateLimit.RequestsPerSecond != 5 || cfg.RateLimit.Burst != 10 {
		t.Errorf("unexpected rate limit: %+v", cfg.RateLimit)
	}
}

func TestLoadAppConfigRejectsUnknownDayKey(t *testing.T) {
	path := writeProperties(t, `
app:
  forecast:
    base-url: https://api.openweathermap.org
    day-key: week-of-year
  geolocation:
    base-url: https://api.bigdatacloud.net
`)
	if err := resource.Init(path); err != nil {
		t.Fatalf("failed to load properties: %v", err)
	}

	if _, err := LoadAppConfig(); err == nil {
		t.Fatal("expected validation error for unknown day key")
	}
}

func TestLoadAppConfigRejectsMissingBaseURL(t *testing.T) {
	path := writeProperties(t, `
app:
  geolocation:
    base-url: https://api.bigdatacloud.net
`)
	if err := resource.Init(path); err != nil {
		t.Fatalf("failed to load properties: %v", err)
	}

	if _, err := LoadAppConfig(); err == nil {
		t.Fatal("expected validation error for missing forecast base url")
	}
}
