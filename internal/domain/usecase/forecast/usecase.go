package forecast

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

type UseCase interface {
	// GetDailyForecast fetches the forecast for a city and condenses it to one sample per day
	GetDailyForecast(ctx context.Context, city string) (*entity.AggregatedForecast, error)

	// LocateCity resolves coordinates to the name of the closest locality
	LocateCity(ctx context.Context, latitude float64, longitude float64) (*model.LocationResponse, error)
}
