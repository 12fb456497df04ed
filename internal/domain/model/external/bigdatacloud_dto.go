package external

// ReverseGeocodeResponse represents the BigDataCloud reverse-geocode-client payload
type ReverseGeocodeResponse struct {
	Latitude                 float64 `json:"latitude"`
	Longitude                float64 `json:"longitude"`
	City                     string  `json:"city"`
	Locality                 string  `json:"locality"`
	CountryName              string  `json:"countryName"`
	CountryCode              string  `json:"countryCode"`
	PrincipalSubdivision     string  `json:"principalSubdivision"`
	PrincipalSubdivisionCode string  `json:"principalSubdivisionCode"`
}

// GeocodeErrorResponse represents error responses from BigDataCloud
type GeocodeErrorResponse struct {
	Status      int    `json:"status"`
	Description string `json:"description"`
}
