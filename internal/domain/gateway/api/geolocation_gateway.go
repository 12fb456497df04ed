package api

import (
	"context"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

// GeolocationGateway resolves coordinates to a place
type GeolocationGateway interface {
	// ReverseGeocode looks up the locality at the given coordinates
	ReverseGeocode(ctx context.Context, latitude float64, longitude float64) (*external.ReverseGeocodeResponse, error)

	// Health reports whether the gateway is able to serve requests
	Health() model.ComponentHealthStatus
}
