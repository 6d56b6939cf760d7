package logic

import (
	"math"

	"gig-weather/internal/domain/model"
	"gig-weather/pkg/util/numberutils"
)

// Recommendation bands for a computed score.
const (
	RecommendationGreat = "great"
	RecommendationOk    = "ok"
	RecommendationBad   = "bad"
)

// ComputeScoreBreakdown computes the 0-100 weather-suitability score for a
// single forecast day. Outdoor events penalize cold, rain and wind harder
// than indoor ones. The function is total over its numeric domain: any
// finite inputs produce a score in [0, 100].
func ComputeScoreBreakdown(isOutdoor bool, tempMax, precipitationSum, windMax float64) model.ScoreBreakdown {
	var tempPenalty int
	if isOutdoor {
		switch {
		case tempMax < -10:
			tempPenalty = 40
		case tempMax < 0:
			tempPenalty = 25
		case tempMax < 5:
			tempPenalty = 12
		case tempMax > 30:
			tempPenalty = 18
		case tempMax > 25:
			tempPenalty = 10
		}
	} else {
		switch {
		case tempMax < -10:
			tempPenalty = 15
		case tempMax < 0:
			tempPenalty = 10
		case tempMax > 30:
			tempPenalty = 8
		}
	}

	precipitationFactor, precipitationCap := 12.0, 60
	if !isOutdoor {
		precipitationFactor, precipitationCap = 6.0, 35
	}
	precipitationPenalty := clamp(int(math.Round(precipitationSum*precipitationFactor)), 0, precipitationCap)

	var windPenalty int
	if isOutdoor {
		switch {
		case windMax >= 20:
			windPenalty = 35
		case windMax >= 14:
			windPenalty = 22
		case windMax >= 10:
			windPenalty = 12
		}
	} else {
		switch {
		case windMax >= 20:
			windPenalty = 15
		case windMax >= 14:
			windPenalty = 10
		}
	}

	score := clamp(100-(tempPenalty+precipitationPenalty+windPenalty), 0, 100)

	return model.ScoreBreakdown{
		IsOutdoor:            isOutdoor,
		TempMax:              tempMax,
		PrecipitationSum:     precipitationSum,
		WindMax:              windMax,
		TempPenalty:          tempPenalty,
		PrecipitationPenalty: precipitationPenalty,
		WindPenalty:          windPenalty,
		Score:                score,
	}
}

// ComputeWeatherScore returns only the final score. Higher is better.
func ComputeWeatherScore(isOutdoor bool, tempMax, precipitationSum, windMax float64) int {
	return ComputeScoreBreakdown(isOutdoor, tempMax, precipitationSum, windMax).Score
}

// Recommendation maps a score to its band.
func Recommendation(score int) string {
	switch {
	case score >= 80:
		return RecommendationGreat
	case score >= 50:
		return RecommendationOk
	default:
		return RecommendationBad
	}
}

func clamp(value, min, max int) int {
	return numberutils.ClampInt(value, min, max)
}
