package configs

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"go-weather/pkg/resource"
)

// AppConfig is the typed view of application.yml used to wire the server.
type AppConfig struct {
	Name        string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	Port        string `validate:"required,numeric"`
	ContextPath string `validate:"required,startswith=/"`
	Forecast    ForecastConfig
	Geolocation GeolocationConfig
	DefaultCity string `validate:"required"`
	RateLimit   RateLimitConfig
}

type ForecastConfig struct {
	BaseURL string        `validate:"required,url"`
	APIKey  string
	Units   string        `validate:"oneof=standard metric imperial"`
	Timeout time.Duration `validate:"gt=0"`
	DayKey  string        `validate:"oneof=day-of-month calendar-date"`
}

type GeolocationConfig struct {
	BaseURL          string        `validate:"required,url"`
	LocalityLanguage string        `validate:"required"`
	Timeout          time.Duration `validate:"gt=0"`
}

// RateLimitConfig bounds inbound requests per client IP. A zero rate disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `validate:"gte=0"`
	Burst             int     `validate:"gte=0"`
}

// LoadAppConfig reads the loaded properties into an AppConfig and validates it.
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Name:        resource.GetStringOrDefault("app.name", Env.ApplicationName),
		LogLevel:    resource.GetStringOrDefault("app.log.level", "info"),
		Port:        resource.GetStringOrDefault("app.server.port", "8080"),
		ContextPath: resource.GetStringOrDefault("app.server.context-path", "/api"),
		Forecast: ForecastConfig{
			BaseURL: resource.GetString("app.forecast.base-url"),
			APIKey:  resource.GetString("app.forecast.api-key"),
			Units:   resource.GetStringOrDefault("app.forecast.units", "metric"),
			Timeout: durationOrDefault("app.forecast.timeout", 10*time.Second),
			DayKey:  resource.GetStringOrDefault("app.forecast.day-key", "day-of-month"),
		},
		Geolocation: GeolocationConfig{
			BaseURL:          resource.GetString("app.geolocation.base-url"),
			LocalityLanguage: resource.GetStringOrDefault("app.geolocation.locality-language", "en"),
			Timeout:          durationOrDefault("app.geolocation.timeout", 5*time.Second),
		},
		DefaultCity: resource.GetStringOrDefault("app.page.default-city", "Copenhagen"),
		RateLimit: RateLimitConfig{
			RequestsPerSecond: resource.GetFloat64("app.rate-limit.requests-per-second"),
			Burst:             resource.GetInt("app.rate-limit.burst"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid application properties: %w", err)
	}
	return cfg, nil
}

func durationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if d := resource.GetDuration(key); d > 0 {
		return d
	}
	return defaultValue
}
