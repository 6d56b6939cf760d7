package model

// ScoreBreakdown is the derived weather-suitability score for a gig day
// together with the individual penalties. Recomputed on demand, never
// stored.
type ScoreBreakdown struct {
	IsOutdoor            bool    `json:"isOutdoor"`
	TempMax              float64 `json:"tempMax"`
	PrecipitationSum     float64 `json:"precipitationSum"`
	WindMax              float64 `json:"windMax"`
	TempPenalty          int     `json:"tempPenalty"`
	PrecipitationPenalty int     `json:"precipitationPenalty"`
	WindPenalty          int     `json:"windPenalty"`
	Score                int     `json:"score"`
}
