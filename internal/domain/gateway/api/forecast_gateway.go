package api

import (
	"context"

	"gig-weather/internal/domain/model"
)

// ForecastGateway defines the interface for daily forecast lookups against
// the external weather provider.
type ForecastGateway interface {
	// FetchDailyForecast fetches the daily forecast for the given coordinates.
	// Expected failures (network, provider errors, empty data) come back as
	// the failure side of the result, never as a Go error.
	FetchDailyForecast(ctx context.Context, latitude, longitude float64) model.ForecastResult
}
