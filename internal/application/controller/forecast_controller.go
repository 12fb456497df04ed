package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/forecast"
	"go-weather/pkg/msg"
)

type ForecastController struct {
	api     *echo.Group
	useCase forecast.UseCase
}

func NewForecastController(api *echo.Group, useCase forecast.UseCase) *ForecastController {
	return &ForecastController{api: api, useCase: useCase}
}

// InitForecastRoutes initializes forecast routes
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.GET("/forecast", controller.GetDailyForecast)
}

// GetDailyForecast godoc
// @Summary Get the daily forecast of a city
// @Description Fetch the 5 day / 3 hour forecast of a city and condense it to one sample per day, keeping the warmest sample of each day
// @Tags forecast
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} entity.AggregatedForecast "Forecast with one entry per day"
// @Failure 400 {object} map[string]string "Missing or too long city"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 502 {object} map[string]string "Forecast provider failure"
// @Router /forecast [get]
func (controller *ForecastController) GetDailyForecast(c echo.Context) error {
	var query model.ForecastQueryDTO
	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.error.bind")})
	}
	if err := c.Validate(&query); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": cityValidationMessage(err)})
	}

	result, err := controller.useCase.GetDailyForecast(c.Request().Context(), query.City)
	if err != nil {
		status, message := errorResponse(err, "forecast.error.city-not-found")
		return c.JSON(status, map[string]string{"error": message})
	}

	return c.JSON(http.StatusOK, result)
}

// cityValidationMessage reports a city over the length bound separately from a missing one.
func cityValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Tag() == "max" {
				return msg.GetMessage("forecast.error.city-too-long", fe.Param())
			}
		}
	}
	return msg.GetMessage("forecast.error.city-required")
}
