package forecast

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"go-weather/internal/domain/aggregation"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// ErrCityRequired is returned when the city name is blank.
var ErrCityRequired = errors.New("city is required")

type forecastUseCase struct {
	forecastGateway    api.ForecastGateway
	geolocationGateway api.GeolocationGateway
	dayKey             aggregation.DayKeyFunc
}

// NewForecastUseCase wires the gateways with the day key strategy used to condense forecasts.
// A nil dayKey groups samples by day of month.
func NewForecastUseCase(forecastGateway api.ForecastGateway, geolocationGateway api.GeolocationGateway, dayKey aggregation.DayKeyFunc) UseCase {
	if dayKey == nil {
		dayKey = aggregation.DayOfMonth
	}

	return &forecastUseCase{
		forecastGateway:    forecastGateway,
		geolocationGateway: geolocationGateway,
		dayKey:             dayKey,
	}
}

// GetDailyForecast fetches the forecast for a city and condenses it to one sample per day
func (uc *forecastUseCase) GetDailyForecast(ctx context.Context, city string) (*entity.AggregatedForecast, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrCityRequired
	}

	response, err := uc.forecastGateway.GetForecast(ctx, city)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			log.Info(msg.GetMessage("forecast.city-not-found", city))
		} else {
			log.Error(msg.GetMessage("forecast.error.fetch", city, err), zap.String("city", city), zap.Error(err))
		}
		return nil, fmt.Errorf("failed to get forecast for %q: %w", city, err)
	}

	aggregated, err := aggregation.Aggregate(toForecast(response), uc.dayKey)
	if err != nil {
		log.Error(msg.GetMessage("forecast.error.aggregate", city, err), zap.String("city", city), zap.Error(err))
		return nil, err
	}

	log.Info(msg.GetMessage("forecast.aggregated", aggregated.City.Name, len(response.List), len(aggregated.List)),
		zap.String("city", aggregated.City.Name),
		zap.Int("samples", len(response.List)),
		zap.Int("days", len(aggregated.List)),
	)

	return &aggregated, nil
}

// LocateCity resolves coordinates to the name of the closest locality
func (uc *forecastUseCase) LocateCity(ctx context.Context, latitude float64, longitude float64) (*model.LocationResponse, error) {
	response, err := uc.geolocationGateway.ReverseGeocode(ctx, latitude, longitude)
	if err != nil {
		log.Error(msg.GetMessage("geolocation.error.lookup", latitude, longitude, err), zap.Error(err))
		return nil, fmt.Errorf("failed to locate %v,%v: %w", latitude, longitude, err)
	}

	name := response.City
	if name == "" {
		name = response.Locality
	}
	if name == "" {
		log.Info(msg.GetMessage("geolocation.not-found", latitude, longitude))
		return nil, fmt.Errorf("no locality at %v,%v: %w", latitude, longitude, api.ErrNotFound)
	}

	return &model.LocationResponse{
		City:      name,
		Country:   response.CountryCode,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}
