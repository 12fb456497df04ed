package controller

import (
	"errors"
	"net/http"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/forecast"
	"go-weather/pkg/msg"
)

// errorResponse maps a use case error to the status code and message shown to the client.
// Anything that is not a client mistake is reported as a bad gateway.
func errorResponse(err error, notFoundKey string) (int, string) {
	switch {
	case errors.Is(err, forecast.ErrCityRequired):
		return http.StatusBadRequest, msg.GetMessage("forecast.error.city-required")
	case errors.Is(err, api.ErrNotFound):
		return http.StatusNotFound, msg.GetMessage(notFoundKey)
	default:
		return http.StatusBadGateway, msg.GetMessage("app.error.upstream")
	}
}
