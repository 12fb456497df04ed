package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/forecast"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/numberutils"
)

type GeolocationController struct {
	api     *echo.Group
	useCase forecast.UseCase
}

func NewGeolocationController(api *echo.Group, useCase forecast.UseCase) *GeolocationController {
	return &GeolocationController{api: api, useCase: useCase}
}

// InitGeolocationRoutes initializes geolocation routes
func (controller *GeolocationController) InitGeolocationRoutes() {
	controller.api.GET("/geolocation", controller.LocateCity)
}

// LocateCity godoc
// @Summary Find the city at a position
// @Description Reverse geocode browser coordinates to the name of the closest city or locality
// @Tags geolocation
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Success 200 {object} model.LocationResponse "Closest city"
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 404 {object} map[string]string "No city at the position"
// @Failure 502 {object} map[string]string "Geolocation provider failure"
// @Router /geolocation [get]
func (controller *GeolocationController) LocateCity(c echo.Context) error {
	latitude, latErr := numberutils.ToFloat64WithError(c.QueryParam("latitude"))
	longitude, lonErr := numberutils.ToFloat64WithError(c.QueryParam("longitude"))
	if latErr != nil || lonErr != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("geolocation.error.invalid-coordinates")})
	}

	query := model.LocationQueryDTO{Latitude: latitude, Longitude: longitude}
	if err := c.Validate(&query); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("geolocation.error.invalid-coordinates")})
	}

	location, err := controller.useCase.LocateCity(c.Request().Context(), query.Latitude, query.Longitude)
	if err != nil {
		status, message := errorResponse(err, "geolocation.error.not-found")
		return c.JSON(status, map[string]string{"error": message})
	}

	return c.JSON(http.StatusOK, location)
}
