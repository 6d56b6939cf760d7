package model

// ForecastDay is one calendar day's weather summary for a city.
type ForecastDay struct {
	Date               string  `json:"date"`
	TempMinC           float64 `json:"tempMinC"`
	TempMaxC           float64 `json:"tempMaxC"`
	PrecipitationSumMm float64 `json:"precipitationSumMm"`
	WindSpeedMaxKmh    float64 `json:"windSpeedMaxKmh"`
}

// FailureKind classifies a failed forecast fetch.
type FailureKind string

const (
	FailureCityNotFound   FailureKind = "CITY_NOT_FOUND"
	FailureNoForecastData FailureKind = "NO_FORECAST_DATA"
	FailureNetwork        FailureKind = "NETWORK"
	FailureHTTP           FailureKind = "HTTP"
	FailureSerialization  FailureKind = "SERIALIZATION"
	FailureUnknown        FailureKind = "UNKNOWN"
)

// ForecastFailure is an expected, typed failure outcome. Failed fetches are
// values carried in cache entries, not Go errors propagated up the stack.
type ForecastFailure struct {
	Kind       FailureKind `json:"kind"`
	HTTPStatus int         `json:"httpStatus,omitempty"`
	Detail     string      `json:"detail,omitempty"`
}

// Retryable reports whether a later attempt could produce a different
// outcome. CityNotFound and NoForecastData are terminal for a city; the
// remaining kinds are transient and user-retryable.
func (f ForecastFailure) Retryable() bool {
	switch f.Kind {
	case FailureCityNotFound, FailureNoForecastData:
		return false
	default:
		return true
	}
}

// ForecastResult is the tagged outcome of one forecast fetch: either an
// ordered sequence of daily entries, or a typed failure. Exactly one of
// Days/Failure is set.
type ForecastResult struct {
	Days    []ForecastDay    `json:"days,omitempty"`
	Failure *ForecastFailure `json:"failure,omitempty"`
}

func SuccessResult(days []ForecastDay) ForecastResult {
	return ForecastResult{Days: days}
}

func FailureResult(kind FailureKind) ForecastResult {
	return ForecastResult{Failure: &ForecastFailure{Kind: kind}}
}

func HTTPFailureResult(status int) ForecastResult {
	return ForecastResult{Failure: &ForecastFailure{Kind: FailureHTTP, HTTPStatus: status}}
}

func UnknownFailureResult(detail string) ForecastResult {
	return ForecastResult{Failure: &ForecastFailure{Kind: FailureUnknown, Detail: detail}}
}

// OK reports whether the fetch succeeded.
func (r ForecastResult) OK() bool {
	return r.Failure == nil
}

// DayFor returns the forecast day matching the given ISO date exactly, or
// nil when the forecast horizon does not cover that date.
func (r ForecastResult) DayFor(date string) *ForecastDay {
	for i := range r.Days {
		if r.Days[i].Date == date {
			return &r.Days[i]
		}
	}
	return nil
}
