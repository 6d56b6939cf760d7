package health

import "gig-weather/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
