package model

import "time"

// WeatherStatus is the per-gig weather state shown to the caller.
type WeatherStatus string

const (
	StatusLoading                 WeatherStatus = "LOADING"
	StatusAvailable               WeatherStatus = "AVAILABLE"
	StatusCityNotFound            WeatherStatus = "CITY_NOT_FOUND"
	StatusForecastNotAvailableYet WeatherStatus = "FORECAST_NOT_AVAILABLE_YET"
	StatusError                   WeatherStatus = "ERROR"
)

// GigWeatherView is one projected list record. The projection regenerates
// every record wholesale on each pass; views are never mutated in place.
type GigWeatherView struct {
	GigID          string        `json:"gigId"`
	Title          string        `json:"title"`
	Date           string        `json:"date"`
	CityID         string        `json:"cityId"`
	IsOutdoor      bool          `json:"isOutdoor"`
	Status         WeatherStatus `json:"status"`
	Score          *int          `json:"score,omitempty"`
	Recommendation string        `json:"recommendation,omitempty"`
	Summary        *ForecastDay  `json:"summary,omitempty"`
	ErrorKind      FailureKind   `json:"errorKind,omitempty"`
	Retryable      bool          `json:"retryable,omitempty"`
}

// GigDetailView extends the list record with the full score breakdown for
// the single-gig detail endpoint.
type GigDetailView struct {
	GigWeatherView
	CreatedAt time.Time       `json:"createdAt"`
	Breakdown *ScoreBreakdown `json:"breakdown,omitempty"`
}
