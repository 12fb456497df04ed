package health

import (
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	forecastGateway    api.ForecastGateway
	geolocationGateway api.GeolocationGateway
}

func NewHealthUseCase(forecastGateway api.ForecastGateway, geolocationGateway api.GeolocationGateway) UseCase {
	return &healthUseCase{
		forecastGateway:    forecastGateway,
		geolocationGateway: geolocationGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	forecastHealth := useCase.forecastGateway.Health()
	geolocationHealth := useCase.geolocationGateway.Health()

	// Geolocation only backs the locate button, so it does not take the service down.
	overallStatus := model.StatusUp
	if forecastHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:      overallStatus,
		Forecast:    forecastHealth,
		Geolocation: geolocationHealth,
	}
}
