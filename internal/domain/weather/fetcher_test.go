package weather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gig-weather/internal/domain/city"
	"gig-weather/internal/domain/entity"
	"gig-weather/internal/domain/model"
)

type fakeForecastGateway struct {
	lastLat, lastLon float64
	result           model.ForecastResult
}

func (f *fakeForecastGateway) FetchDailyForecast(ctx context.Context, latitude, longitude float64) model.ForecastResult {
	f.lastLat, f.lastLon = latitude, longitude
	return f.result
}

type fakeGeocodingGateway struct {
	city entity.City
	fail *model.ForecastFailure
}

func (f *fakeGeocodingGateway) SearchCity(ctx context.Context, name string) (entity.City, *model.ForecastFailure) {
	return f.city, f.fail
}

func TestDirectoryFetcherUsesDirectoryCoordinates(t *testing.T) {
	forecasts := &fakeForecastGateway{result: model.SuccessResult([]model.ForecastDay{{Date: "2026-09-01"}})}
	fetcher := NewDirectoryFetcher(city.DefaultDirectory(), forecasts)

	result := fetcher.FetchCity(context.Background(), "helsinki")

	require.True(t, result.OK())
	helsinki, ok := city.DefaultDirectory().ByID("helsinki")
	require.True(t, ok)
	assert.Equal(t, helsinki.Latitude, forecasts.lastLat)
	assert.Equal(t, helsinki.Longitude, forecasts.lastLon)
}

func TestDirectoryFetcherUnknownID(t *testing.T) {
	forecasts := &fakeForecastGateway{}
	fetcher := NewDirectoryFetcher(city.DefaultDirectory(), forecasts)

	result := fetcher.FetchCity(context.Background(), "atlantis")

	require.False(t, result.OK())
	assert.Equal(t, model.FailureCityNotFound, result.Failure.Kind)
	assert.Zero(t, forecasts.lastLat)
}

func TestGeocodingFetcherResolvesThenFetches(t *testing.T) {
	forecasts := &fakeForecastGateway{result: model.SuccessResult([]model.ForecastDay{{Date: "2026-09-01"}})}
	geocoding := &fakeGeocodingGateway{city: entity.City{ID: "Berlin", Latitude: 52.52, Longitude: 13.41}}
	fetcher := NewGeocodingFetcher(geocoding, forecasts)

	result := fetcher.FetchCity(context.Background(), "Berlin")

	require.True(t, result.OK())
	assert.InDelta(t, 52.52, forecasts.lastLat, 0.001)
	assert.InDelta(t, 13.41, forecasts.lastLon, 0.001)
}

func TestGeocodingFetcherPropagatesFailure(t *testing.T) {
	forecasts := &fakeForecastGateway{}
	geocoding := &fakeGeocodingGateway{fail: &model.ForecastFailure{Kind: model.FailureCityNotFound}}
	fetcher := NewGeocodingFetcher(geocoding, forecasts)

	result := fetcher.FetchCity(context.Background(), "Nowhereville")

	require.False(t, result.OK())
	assert.Equal(t, model.FailureCityNotFound, result.Failure.Kind)
}
