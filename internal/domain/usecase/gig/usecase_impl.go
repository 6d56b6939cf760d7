package gig

import (
	"context"
	"strings"
	"sync"
	"time"

	"gig-weather/internal/domain/city"
	"gig-weather/internal/domain/entity"
	"gig-weather/internal/domain/forecastcache"
	"gig-weather/internal/domain/gateway/db"
	"gig-weather/internal/domain/model"
	"gig-weather/internal/domain/projection"
	"gig-weather/pkg/log"
)

const gigDateLayout = "2006-01-02"

type gigUseCase struct {
	gigGateway  db.GigGateway
	coordinator *forecastcache.Coordinator
	directory   *city.Directory // nil in freetext mode

	mu    sync.RWMutex
	gigs  []entity.Gig
	views []model.GigWeatherView
}

func NewGigUseCase(gigGateway db.GigGateway, coordinator *forecastcache.Coordinator, directory *city.Directory) UseCase {
	return &gigUseCase{
		gigGateway:  gigGateway,
		coordinator: coordinator,
		directory:   directory,
		views:       make([]model.GigWeatherView, 0),
	}
}

func (uc *gigUseCase) Start(ctx context.Context) {
	go func() {
		changes := uc.coordinator.Changes()
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				uc.reproject(ctx)
			}
		}
	}()
}

func (uc *gigUseCase) Refresh(ctx context.Context) error {
	gigs, err := uc.gigGateway.FindAllOrdered()
	if err != nil {
		return err
	}

	uc.mu.Lock()
	uc.gigs = gigs
	uc.mu.Unlock()

	uc.reproject(ctx)
	return nil
}

// reproject rebuilds the view list from the current gig collection and the
// coordinator's cache snapshot, then requests fetches for whatever the
// projection reported missing.
func (uc *gigUseCase) reproject(ctx context.Context) {
	uc.mu.Lock()
	in := projection.Input{
		Gigs:      uc.gigs,
		Cache:     uc.coordinator.Snapshot(),
		Directory: uc.directory,
	}
	views, missing := projection.Project(in)
	uc.views = views
	uc.mu.Unlock()

	if len(missing) > 0 {
		uc.coordinator.EnsureFetched(ctx, missing)
	}
}

func (uc *gigUseCase) Projection() []model.GigWeatherView {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.GigWeatherView, len(uc.views))
	copy(out, uc.views)
	return out
}

func (uc *gigUseCase) GigDetail(ctx context.Context, id string) (*model.GigDetailView, error) {
	gig, err := uc.gigGateway.FindByID(id)
	if err != nil {
		return nil, err
	}

	in := projection.Input{
		Gigs:      []entity.Gig{*gig},
		Cache:     uc.coordinator.Snapshot(),
		Directory: uc.directory,
	}
	detail := projection.ProjectDetail(*gig, in)

	if detail.Status == model.StatusLoading {
		uc.coordinator.EnsureFetched(ctx, []string{gig.CityID})
	}
	return &detail, nil
}

func (uc *gigUseCase) AddGig(ctx context.Context, dto model.CreateGigDTO) (*entity.Gig, error) {
	if err := validateCreateGig(dto); err != nil {
		return nil, err
	}

	created, err := uc.gigGateway.Create(entity.Gig{
		Title:     strings.TrimSpace(dto.Title),
		Date:      dto.Date,
		CityID:    strings.TrimSpace(dto.CityID),
		IsOutdoor: dto.IsOutdoor,
	})
	if err != nil {
		return nil, err
	}

	log.Infow("gig created", "gig", created.ID, "city", created.CityID, "date", created.Date)

	if err := uc.Refresh(ctx); err != nil {
		log.Warnw("projection refresh after create failed", "gig", created.ID, "error", err)
	}
	return created, nil
}

func (uc *gigUseCase) DeleteGig(ctx context.Context, id string) error {
	if err := uc.gigGateway.DeleteByID(id); err != nil {
		return err
	}

	log.Infow("gig deleted", "gig", id)

	if err := uc.Refresh(ctx); err != nil {
		log.Warnw("projection refresh after delete failed", "gig", id, "error", err)
	}
	return nil
}

func (uc *gigUseCase) RetryCity(ctx context.Context, cityID string) {
	uc.coordinator.Invalidate(cityID)
	uc.reproject(ctx)
}

func (uc *gigUseCase) Cities() []entity.City {
	if uc.directory == nil {
		return nil
	}
	return uc.directory.All()
}

// validateCreateGig rejects structurally invalid payloads. An unknown city id
// is not a validation error: the projection reports it as CITY_NOT_FOUND.
func validateCreateGig(dto model.CreateGigDTO) error {
	if strings.TrimSpace(dto.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(dto.CityID) == "" {
		return ErrCityRequired
	}
	if _, err := time.Parse(gigDateLayout, dto.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
