package forecast

import (
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
)

// toForecast converts the upstream payload into the domain forecast, keeping sample order.
func toForecast(response *external.ForecastResponse) entity.Forecast {
	samples := make([]entity.ForecastSample, 0, len(response.List))
	for _, item := range response.List {
		samples = append(samples, toSample(item))
	}

	return entity.Forecast{
		Cod:     response.Cod.String(),
		Message: response.Message,
		Count:   response.Cnt,
		List:    samples,
		City:    toCity(response.City),
	}
}

func toSample(item external.ForecastItem) entity.ForecastSample {
	conditions := make([]entity.WeatherCondition, 0, len(item.Weather))
	for _, w := range item.Weather {
		conditions = append(conditions, entity.WeatherCondition{
			ID:          w.ID,
			Main:        w.Main,
			Description: w.Description,
			Icon:        w.Icon,
		})
	}

	return entity.ForecastSample{
		Timestamp:     item.Dt,
		TimestampText: item.DtTxt,
		Main: entity.Measurements{
			Temp:      item.Main.Temp,
			FeelsLike: item.Main.FeelsLike,
			TempMin:   item.Main.TempMin,
			TempMax:   item.Main.TempMax,
			Pressure:  item.Main.Pressure,
			Humidity:  item.Main.Humidity,
		},
		Weather:    conditions,
		Clouds:     entity.Clouds{All: item.Clouds.All},
		Wind:       entity.Wind{Speed: item.Wind.Speed, Deg: item.Wind.Deg, Gust: item.Wind.Gust},
		Visibility: item.Visibility,
		Pop:        item.Pop,
	}
}

func toCity(city external.CityDTO) entity.City {
	return entity.City{
		ID:         city.ID,
		Name:       city.Name,
		Coord:      entity.Coordinates{Lat: city.Coord.Lat, Lon: city.Coord.Lon},
		Country:    city.Country,
		Population: city.Population,
		Timezone:   city.Timezone,
		Sunrise:    city.Sunrise,
		Sunset:     city.Sunset,
	}
}
