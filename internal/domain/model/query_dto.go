package model

// ForecastQueryDTO holds the query parameters of the forecast endpoint
type ForecastQueryDTO struct {
	City string `query:"city" validate:"required,max=100"`
}

// LocationQueryDTO holds the query parameters of the geolocation endpoint
type LocationQueryDTO struct {
	Latitude  float64 `query:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `query:"longitude" validate:"gte=-180,lte=180"`
}

// LocationResponse is the body returned by the geolocation endpoint
type LocationResponse struct {
	City      string  `json:"city"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
