// Package aggregation condenses a fine-grained forecast series into one
// representative sample per day.
package aggregation

import (
	"fmt"

	"go-weather/internal/domain/entity"
)

// CondenseDays reduces samples to one representative per day key, preserving
// the order in which days first appear. An empty input yields an empty, non-nil slice.
func CondenseDays(samples []entity.ForecastSample, dayKey DayKeyFunc) ([]entity.DailyForecast, error) {
	reducer := NewReducer(dayKey)
	for i, sample := range samples {
		if err := reducer.Add(sample); err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return reducer.Representatives(), nil
}

// Aggregate builds the condensed forecast. City metadata and the upstream
// envelope are passed through unchanged.
func Aggregate(forecast entity.Forecast, dayKey DayKeyFunc) (entity.AggregatedForecast, error) {
	days, err := CondenseDays(forecast.List, dayKey)
	if err != nil {
		return entity.AggregatedForecast{}, fmt.Errorf("failed to aggregate forecast for %q: %w", forecast.City.Name, err)
	}

	return entity.AggregatedForecast{
		Cod:     forecast.Cod,
		Message: forecast.Message,
		Count:   forecast.Count,
		List:    days,
		City:    forecast.City,
	}, nil
}
