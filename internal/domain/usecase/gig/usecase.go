package gig

import (
	"context"
	"errors"

	"gig-weather/internal/domain/entity"
	"gig-weather/internal/domain/model"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrCityRequired  = errors.New("city is required")
	ErrInvalidDate   = errors.New("date must be a calendar date in YYYY-MM-DD form")
)

// UseCase orchestrates the gig collection, the forecast cache and the
// projection into presentation records.
type UseCase interface {
	// Start consumes cache change signals until ctx is cancelled, rebuilding
	// the projection after every completed fetch.
	Start(ctx context.Context)

	// Refresh reloads the gig collection from storage and rebuilds the
	// projection, kicking off fetches for any unfetched cities.
	Refresh(ctx context.Context) error

	// Projection returns the current ordered list, one record per gig.
	Projection() []model.GigWeatherView

	GigDetail(ctx context.Context, id string) (*model.GigDetailView, error)

	AddGig(ctx context.Context, dto model.CreateGigDTO) (*entity.Gig, error)
	DeleteGig(ctx context.Context, id string) error

	// RetryCity discards the cached outcome for one city and fetches again.
	RetryCity(ctx context.Context, cityID string)

	// Cities lists the selectable cities, or nil in freetext mode.
	Cities() []entity.City
}
