package external

import "encoding/json"

// ForecastResponse represents the OpenWeatherMap 5 day / 3 hour forecast payload
type ForecastResponse struct {
	Cod     json.Number     `json:"cod"`
	Message json.RawMessage `json:"message"`
	Cnt     int             `json:"cnt"`
	List    []ForecastItem  `json:"list"`
	City    CityDTO         `json:"city"`
}

// ForecastItem represents a single 3-hour forecast entry
type ForecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []WeatherDTO `json:"weather"`
	Clouds  struct {
		All int `json:"all"`
	} `json:"clouds"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
		Gust  float64 `json:"gust"`
	} `json:"wind"`
	Visibility int     `json:"visibility"`
	Pop        float64 `json:"pop"`
	DtTxt      string  `json:"dt_txt"`
}

// WeatherDTO represents a weather condition entry
type WeatherDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CityDTO represents the city block of the forecast payload
type CityDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Country    string `json:"country"`
	Population int64  `json:"population"`
	Timezone   int    `json:"timezone"`
	Sunrise    int64  `json:"sunrise"`
	Sunset     int64  `json:"sunset"`
}

// APIErrorResponse represents error responses from OpenWeatherMap.
// cod arrives either as a number or as a numeric string.
type APIErrorResponse struct {
	Cod     json.Number `json:"cod"`
	Message string      `json:"message"`
}
