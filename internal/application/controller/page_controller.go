package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"go-weather/internal/application/view"
	"go-weather/internal/domain/usecase/forecast"
	"go-weather/pkg/util/numberutils"
)

const indexTemplate = "index.html"

// PageController serves the server-rendered forecast page.
type PageController struct {
	root        *echo.Group
	useCase     forecast.UseCase
	defaultCity string
	apiBase     string
}

func NewPageController(root *echo.Group, useCase forecast.UseCase, defaultCity string, apiBase string) *PageController {
	return &PageController{root: root, useCase: useCase, defaultCity: defaultCity, apiBase: apiBase}
}

// InitPageRoutes initializes page routes
func (controller *PageController) InitPageRoutes() {
	controller.root.GET("/", controller.Index)
}

// Index renders the forecast of ?city (the default city when absent). ?day selects a
// day of the strip by its timestamp.
func (controller *PageController) Index(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		city = controller.defaultCity
	}

	selectedDay := numberutils.ToInt64WithDefault(c.QueryParam("day"), 0)
	if !numberutils.IsInt64Positive(selectedDay) {
		selectedDay = 0
	}

	result, err := controller.useCase.GetDailyForecast(c.Request().Context(), city)
	if err != nil {
		status, message := errorResponse(err, "forecast.error.city-not-found")
		page := view.NewErrorPage(city, message)
		page.APIBase = controller.apiBase
		return c.Render(status, indexTemplate, page)
	}

	page := view.NewPage(city, result, selectedDay)
	page.APIBase = controller.apiBase
	return c.Render(http.StatusOK, indexTemplate, page)
}
