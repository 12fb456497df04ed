package api

import (
	"context"
	"strconv"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

const reverseGeocodePath = "/data/reverse-geocode-client"

// geolocationGatewayImpl implements the GeolocationGateway interface against BigDataCloud
type geolocationGatewayImpl struct {
	httpClient       *http.Client
	localityLanguage string
}

// NewGeolocationGateway creates a new instance of GeolocationGateway with HTTP client
func NewGeolocationGateway(baseUrl string, localityLanguage string, clientOptions http.ClientOptions) GeolocationGateway {
	if localityLanguage == "" {
		localityLanguage = "en"
	}

	return &geolocationGatewayImpl{
		httpClient:       http.NewHttpClient(baseUrl, clientOptions),
		localityLanguage: localityLanguage,
	}
}

// ReverseGeocode looks up the locality at the given coordinates
func (g *geolocationGatewayImpl) ReverseGeocode(ctx context.Context, latitude float64, longitude float64) (*external.ReverseGeocodeResponse, error) {
	successResp, errResp, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(reverseGeocodePath).
		WithQueryParams(map[string]string{
			"latitude":         strconv.FormatFloat(latitude, 'f', -1, 64),
			"longitude":        strconv.FormatFloat(longitude, 'f', -1, 64),
			"localityLanguage": g.localityLanguage,
		}).
		WithSuccessResp(&external.ReverseGeocodeResponse{}).
		WithErrorResp(&external.GeocodeErrorResponse{}).
		Execute()

	if err != nil {
		var message string
		if errResp != nil {
			message = errResp.(*external.GeocodeErrorResponse).Description
		}
		return nil, classifyError("geolocation.reverse", status, message, err)
	}

	return successResp.(*external.ReverseGeocodeResponse), nil
}

// Health reports the configured upstream; the reverse geocode client API needs no credentials
func (g *geolocationGatewayImpl) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"base_url":          g.httpClient.BaseURL(),
			"locality_language": g.localityLanguage,
			"message":           string(model.StatusUp),
		},
	}
}
