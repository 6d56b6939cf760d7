package weather

import (
	"context"

	"gig-weather/internal/domain/city"
	"gig-weather/internal/domain/gateway/api"
	"gig-weather/internal/domain/model"
)

// DirectoryFetcher resolves city ids through the static directory and
// fetches the forecast for the city's fixed coordinates.
type DirectoryFetcher struct {
	directory *city.Directory
	forecasts api.ForecastGateway
}

func NewDirectoryFetcher(directory *city.Directory, forecasts api.ForecastGateway) *DirectoryFetcher {
	return &DirectoryFetcher{
		directory: directory,
		forecasts: forecasts,
	}
}

func (f *DirectoryFetcher) FetchCity(ctx context.Context, cityRef string) model.ForecastResult {
	c, ok := f.directory.ByID(cityRef)
	if !ok {
		return model.FailureResult(model.FailureCityNotFound)
	}
	return f.forecasts.FetchDailyForecast(ctx, c.Latitude, c.Longitude)
}

// GeocodingFetcher treats city references as free-text names, geocodes them
// and fetches the forecast for the resolved coordinates.
type GeocodingFetcher struct {
	geocoding api.GeocodingGateway
	forecasts api.ForecastGateway
}

func NewGeocodingFetcher(geocoding api.GeocodingGateway, forecasts api.ForecastGateway) *GeocodingFetcher {
	return &GeocodingFetcher{
		geocoding: geocoding,
		forecasts: forecasts,
	}
}

func (f *GeocodingFetcher) FetchCity(ctx context.Context, cityRef string) model.ForecastResult {
	c, failure := f.geocoding.SearchCity(ctx, cityRef)
	if failure != nil {
		return model.ForecastResult{Failure: failure}
	}
	return f.forecasts.FetchDailyForecast(ctx, c.Latitude, c.Longitude)
}
