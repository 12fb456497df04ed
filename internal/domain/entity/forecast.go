package entity

import "encoding/json"

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// City is the location metadata attached to a forecast.
type City struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Coord      Coordinates `json:"coord"`
	Country    string      `json:"country"`
	Population int64       `json:"population"`
	Timezone   int         `json:"timezone"`
	Sunrise    int64       `json:"sunrise"`
	Sunset     int64       `json:"sunset"`
}

// Measurements holds the main readings of a sample. Temperatures are in Celsius.
type Measurements struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

// WeatherCondition describes the sky state using the upstream condition code.
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Clouds struct {
	All int `json:"all"`
}

// Wind speed is in m/s, direction in degrees.
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
	Gust  float64 `json:"gust"`
}

// ForecastSample is one upstream measurement at a fixed time point.
// Samples are values: aggregation selects or discards them, it never edits one.
type ForecastSample struct {
	Timestamp     int64              `json:"dt"`
	TimestampText string             `json:"dt_txt"`
	Main          Measurements       `json:"main"`
	Weather       []WeatherCondition `json:"weather"`
	Clouds        Clouds             `json:"clouds"`
	Wind          Wind               `json:"wind"`
	Visibility    int                `json:"visibility"`
	Pop           float64            `json:"pop"`
}

// Temperature returns the sample temperature in Celsius.
func (s ForecastSample) Temperature() float64 {
	return s.Main.Temp
}

// Condition returns the primary weather condition, if the sample carries one.
func (s ForecastSample) Condition() (WeatherCondition, bool) {
	if len(s.Weather) == 0 {
		return WeatherCondition{}, false
	}
	return s.Weather[0], true
}

// DailyForecast is the representative sample chosen for one calendar day.
type DailyForecast = ForecastSample

// AggregatedForecast is the condensed forecast: one DailyForecast per day, in
// first-occurrence order, plus the upstream envelope and city metadata.
type AggregatedForecast struct {
	Cod     string          `json:"cod"`
	Message json.RawMessage `json:"message,omitempty"`
	Count   int             `json:"cnt"`
	List    []DailyForecast `json:"list"`
	City    City            `json:"city"`
}

// Forecast is the upstream forecast as received: every sample, in upstream order.
type Forecast struct {
	Cod     string
	Message json.RawMessage
	Count   int
	List    []ForecastSample
	City    City
}
