package api

import (
	"context"
	"errors"

	"gig-weather/internal/domain/entity"
	"gig-weather/internal/domain/model"
	"gig-weather/internal/domain/model/external"
	"gig-weather/pkg/http"
)

// GeocodingGateway resolves a free-text city name to coordinates.
type GeocodingGateway interface {
	// SearchCity resolves the city with the given name. A nil failure means
	// the returned city is valid; a CityNotFound failure means the provider
	// knows no such place.
	SearchCity(ctx context.Context, name string) (entity.City, *model.ForecastFailure)
}

// openMeteoGeocodingGateway implements the GeocodingGateway interface against
// the Open-Meteo geocoding API.
type openMeteoGeocodingGateway struct {
	httpClient *http.Client
}

// NewOpenMeteoGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewOpenMeteoGeocodingGateway(baseUrl string, clientOptions http.ClientOptions) GeocodingGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &openMeteoGeocodingGateway{
		httpClient: httpClient,
	}
}

// SearchCity resolves the city with the given name.
func (g *openMeteoGeocodingGateway) SearchCity(ctx context.Context, name string) (entity.City, *model.ForecastFailure) {
	successResp, _, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/search").
		WithQueryParams(map[string]string{
			"name":   name,
			"count":  "1",
			"format": "json",
		}).
		WithSuccessResp(&external.GeocodingResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		switch {
		case status == 0:
			return entity.City{}, &model.ForecastFailure{
				Kind:   model.FailureNetwork,
				Detail: err.Error(),
			}
		case errors.Is(err, http.ErrDecode):
			return entity.City{}, &model.ForecastFailure{
				Kind:   model.FailureSerialization,
				Detail: err.Error(),
			}
		default:
			return entity.City{}, &model.ForecastFailure{
				Kind:       model.FailureHTTP,
				HTTPStatus: status,
			}
		}
	}

	response := successResp.(*external.GeocodingResponse)
	if len(response.Results) == 0 {
		return entity.City{}, &model.ForecastFailure{Kind: model.FailureCityNotFound}
	}

	result := response.Results[0]
	return entity.City{
		ID:        name,
		Name:      result.Name,
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
	}, nil
}
