package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScoreBreakdown_WarmCalmOutdoorDay(t *testing.T) {
	breakdown := ComputeScoreBreakdown(true, 32, 0, 5)

	assert.Equal(t, 18, breakdown.TempPenalty)
	assert.Equal(t, 0, breakdown.PrecipitationPenalty)
	assert.Equal(t, 0, breakdown.WindPenalty)
	assert.Equal(t, 82, breakdown.Score)
	assert.Equal(t, RecommendationGreat, Recommendation(breakdown.Score))
}

func TestComputeScoreBreakdown_FreezingWetStormyOutdoorDay(t *testing.T) {
	breakdown := ComputeScoreBreakdown(true, -15, 10, 25)

	assert.Equal(t, 40, breakdown.TempPenalty)
	// raw penalty 120, capped at the outdoor max of 60
	assert.Equal(t, 60, breakdown.PrecipitationPenalty)
	assert.Equal(t, 35, breakdown.WindPenalty)
	assert.Equal(t, 0, breakdown.Score)
	assert.Equal(t, RecommendationBad, Recommendation(breakdown.Score))
}

func TestComputeScoreBreakdown_IndoorPenaltiesAreMilder(t *testing.T) {
	outdoor := ComputeScoreBreakdown(true, -15, 10, 25)
	indoor := ComputeScoreBreakdown(false, -15, 10, 25)

	assert.Equal(t, 15, indoor.TempPenalty)
	assert.Equal(t, 35, indoor.PrecipitationPenalty)
	assert.Equal(t, 15, indoor.WindPenalty)
	assert.Equal(t, 35, indoor.Score)
	assert.Greater(t, indoor.Score, outdoor.Score)
}

func TestComputeScoreBreakdown_NegativePrecipitationDoesNotLiftScore(t *testing.T) {
	breakdown := ComputeScoreBreakdown(true, 20, -5, 0)

	assert.Equal(t, 0, breakdown.PrecipitationPenalty)
	assert.Equal(t, 100, breakdown.Score)
}

func TestComputeWeatherScore_IsBounded(t *testing.T) {
	temps := []float64{-40, -10.5, -10, -0.1, 0, 4.9, 5, 20, 25, 25.1, 30, 30.1, 45}
	precips := []float64{-3, 0, 0.4, 1, 2.5, 7, 50, 200}
	winds := []float64{0, 9.9, 10, 13.9, 14, 19.9, 20, 80}

	for _, outdoor := range []bool{true, false} {
		for _, temp := range temps {
			for _, precip := range precips {
				for _, wind := range winds {
					score := ComputeWeatherScore(outdoor, temp, precip, wind)
					assert.GreaterOrEqual(t, score, 0)
					assert.LessOrEqual(t, score, 100)
				}
			}
		}
	}
}

func TestRecommendation_Bands(t *testing.T) {
	assert.Equal(t, RecommendationGreat, Recommendation(100))
	assert.Equal(t, RecommendationGreat, Recommendation(80))
	assert.Equal(t, RecommendationOk, Recommendation(79))
	assert.Equal(t, RecommendationOk, Recommendation(50))
	assert.Equal(t, RecommendationBad, Recommendation(49))
	assert.Equal(t, RecommendationBad, Recommendation(0))
}
