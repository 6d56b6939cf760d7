package api

import (
	"context"
	"errors"
	"strconv"

	"gig-weather/internal/domain/model"
	"gig-weather/internal/domain/model/external"
	"gig-weather/pkg/http"
)

const dailyVariables = "temperature_2m_min,temperature_2m_max,precipitation_sum,wind_speed_10m_max"

// openMeteoForecastGateway implements the ForecastGateway interface against
// the Open-Meteo forecast API.
type openMeteoForecastGateway struct {
	httpClient *http.Client
}

// NewOpenMeteoForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewOpenMeteoForecastGateway(baseUrl string, clientOptions http.ClientOptions) ForecastGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &openMeteoForecastGateway{
		httpClient: httpClient,
	}
}

// FetchDailyForecast fetches the daily forecast for the given coordinates.
func (g *openMeteoForecastGateway) FetchDailyForecast(ctx context.Context, latitude, longitude float64) model.ForecastResult {
	successResp, _, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(latitude, 'f', 4, 64),
			"longitude": strconv.FormatFloat(longitude, 'f', 4, 64),
			"daily":     dailyVariables,
			"timezone":  "auto",
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		switch {
		case status == 0:
			return model.ForecastResult{Failure: &model.ForecastFailure{
				Kind:   model.FailureNetwork,
				Detail: err.Error(),
			}}
		case errors.Is(err, http.ErrDecode):
			return model.ForecastResult{Failure: &model.ForecastFailure{
				Kind:   model.FailureSerialization,
				Detail: err.Error(),
			}}
		default:
			return model.HTTPFailureResult(status)
		}
	}

	response := successResp.(*external.ForecastResponse)
	days := mapForecastDays(response.Daily)
	if len(days) == 0 {
		return model.FailureResult(model.FailureNoForecastData)
	}
	return model.SuccessResult(days)
}

// mapForecastDays flattens the column-oriented daily block into per-day
// rows. Trailing entries missing from any column are dropped.
func mapForecastDays(daily *external.DailyDTO) []model.ForecastDay {
	if daily == nil {
		return nil
	}

	n := len(daily.Time)
	for _, col := range [][]float64{
		daily.Temperature2mMin,
		daily.Temperature2mMax,
		daily.PrecipitationSum,
		daily.WindSpeed10mMax,
	} {
		if len(col) < n {
			n = len(col)
		}
	}

	days := make([]model.ForecastDay, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, model.ForecastDay{
			Date:               daily.Time[i],
			TempMinC:           daily.Temperature2mMin[i],
			TempMaxC:           daily.Temperature2mMax[i],
			PrecipitationSumMm: daily.PrecipitationSum[i],
			WindSpeedMaxKmh:    daily.WindSpeed10mMax[i],
		})
	}
	return days
}
