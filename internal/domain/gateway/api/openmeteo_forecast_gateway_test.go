package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gig-weather/internal/domain/model"
	pkghttp "gig-weather/pkg/http"
)

const forecastBody = `{
	"latitude": 60.17,
	"longitude": 24.94,
	"daily": {
		"time": ["2026-09-01", "2026-09-02"],
		"temperature_2m_min": [8.1, 9.4],
		"temperature_2m_max": [17.3, 15.0],
		"precipitation_sum": [0.0, 4.2],
		"wind_speed_10m_max": [12.5, 21.0]
	}
}`

func newForecastServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, ForecastGateway) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewOpenMeteoForecastGateway(server.URL, pkghttp.ClientOptions{})
}

func TestFetchDailyForecastMapsDays(t *testing.T) {
	var gotQuery string
	_, gateway := newForecastServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Path
		assert.Equal(t, "60.1700", r.URL.Query().Get("latitude"))
		assert.Equal(t, "24.9400", r.URL.Query().Get("longitude"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastBody))
	})

	result := gateway.FetchDailyForecast(context.Background(), 60.17, 24.94)

	require.True(t, result.OK())
	assert.Equal(t, "/v1/forecast", gotQuery)
	require.Len(t, result.Days, 2)
	assert.Equal(t, model.ForecastDay{
		Date:               "2026-09-01",
		TempMinC:           8.1,
		TempMaxC:           17.3,
		PrecipitationSumMm: 0.0,
		WindSpeedMaxKmh:    12.5,
	}, result.Days[0])
	assert.Equal(t, "2026-09-02", result.Days[1].Date)
}

func TestFetchDailyForecastRaggedColumnsTruncated(t *testing.T) {
	_, gateway := newForecastServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"daily": {
				"time": ["2026-09-01", "2026-09-02"],
				"temperature_2m_min": [8.1],
				"temperature_2m_max": [17.3, 15.0],
				"precipitation_sum": [0.0, 4.2],
				"wind_speed_10m_max": [12.5, 21.0]
			}
		}`))
	})

	result := gateway.FetchDailyForecast(context.Background(), 60.17, 24.94)

	require.True(t, result.OK())
	require.Len(t, result.Days, 1)
}

func TestFetchDailyForecastEmptyDaily(t *testing.T) {
	_, gateway := newForecastServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude": 60.17, "longitude": 24.94}`))
	})

	result := gateway.FetchDailyForecast(context.Background(), 60.17, 24.94)

	require.False(t, result.OK())
	assert.Equal(t, model.FailureNoForecastData, result.Failure.Kind)
	assert.False(t, result.Failure.Retryable())
}

func TestFetchDailyForecastHTTPError(t *testing.T) {
	_, gateway := newForecastServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": true, "reason": "maintenance"}`))
	})

	result := gateway.FetchDailyForecast(context.Background(), 60.17, 24.94)

	require.False(t, result.OK())
	assert.Equal(t, model.FailureHTTP, result.Failure.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, result.Failure.HTTPStatus)
	assert.True(t, result.Failure.Retryable())
}

func TestFetchDailyForecastMalformedBody(t *testing.T) {
	_, gateway := newForecastServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"daily": "not an object"`))
	})

	result := gateway.FetchDailyForecast(context.Background(), 60.17, 24.94)

	require.False(t, result.OK())
	assert.Equal(t, model.FailureSerialization, result.Failure.Kind)
}

func TestFetchDailyForecastNetworkError(t *testing.T) {
	server, gateway := newForecastServer(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	result := gateway.FetchDailyForecast(context.Background(), 60.17, 24.94)

	require.False(t, result.OK())
	assert.Equal(t, model.FailureNetwork, result.Failure.Kind)
	assert.True(t, result.Failure.Retryable())
}
