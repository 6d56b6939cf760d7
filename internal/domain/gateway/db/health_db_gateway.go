package db

import "gig-weather/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
