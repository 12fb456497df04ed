package api

import (
	"context"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

// ForecastGateway defines the interface for forecast-related external API calls
type ForecastGateway interface {
	// GetForecast gets the 5 day / 3 hour forecast for a city name.
	// An unknown city yields an error matching ErrNotFound.
	GetForecast(ctx context.Context, city string) (*external.ForecastResponse, error)

	// Health reports whether the gateway is able to serve requests
	Health() model.ComponentHealthStatus
}
