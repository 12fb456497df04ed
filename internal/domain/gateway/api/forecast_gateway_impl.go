package api

import (
	"context"
	"encoding/json"
	"fmt"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

const forecastPath = "/data/2.5/forecast"

// forecastGatewayImpl implements the ForecastGateway interface against OpenWeatherMap
type forecastGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	units      string
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, apiKey string, units string, clientOptions http.ClientOptions) ForecastGateway {
	if units == "" {
		units = "metric"
	}

	return &forecastGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		apiKey:     apiKey,
		units:      units,
	}
}

// GetForecast gets the forecast for a city
func (g *forecastGatewayImpl) GetForecast(ctx context.Context, city string) (*external.ForecastResponse, error) {
	const op = "forecast.get"

	successResp, errResp, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParams(map[string]string{
			"q":     city,
			"units": g.units,
			"appid": g.apiKey,
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		var message string
		if errResp != nil {
			message = errResp.(*external.APIErrorResponse).Message
		}
		return nil, classifyError(op, status, message, err)
	}

	response := successResp.(*external.ForecastResponse)

	// The API reports some failures in the body while answering 200.
	if code := response.Cod.String(); code != "" && code != "200" {
		var upstreamStatus int
		if _, scanErr := fmt.Sscanf(code, "%d", &upstreamStatus); scanErr != nil {
			return nil, &GatewayError{Op: op, Kind: ErrInvalidResponse, Status: status, Message: "unexpected cod " + code}
		}
		return nil, &GatewayError{Op: op, Kind: kindForStatus(upstreamStatus), Status: upstreamStatus, Message: rawMessageText(response.Message)}
	}

	return response, nil
}

// rawMessageText returns the message field as text; it is a string on errors and a number otherwise.
func rawMessageText(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	return string(raw)
}

// Health reports whether the gateway has the credentials it needs
func (g *forecastGatewayImpl) Health() model.ComponentHealthStatus {
	details := map[string]string{
		"base_url": g.httpClient.BaseURL(),
		"units":    g.units,
	}

	if g.apiKey == "" {
		details["message"] = "api key not configured"
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	details["message"] = string(model.StatusUp)
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
