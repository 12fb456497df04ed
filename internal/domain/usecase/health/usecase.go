package health

import "go-weather/internal/domain/model"

type UseCase interface {
	// CheckHealth reports the status of every upstream the application depends on
	CheckHealth() model.HealthResponse
}
