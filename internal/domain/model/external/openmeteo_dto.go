package external

// ForecastResponse is the Open-Meteo daily forecast payload. The daily block
// is column-oriented: parallel arrays indexed by day.
type ForecastResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Daily     *DailyDTO `json:"daily"`
}

type DailyDTO struct {
	Time             []string  `json:"time"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	WindSpeed10mMax  []float64 `json:"wind_speed_10m_max"`
}

// GeocodingResponse is the Open-Meteo geocoding search payload.
type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

type GeocodingResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
}

// APIErrorResponse is Open-Meteo's error body shape.
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
