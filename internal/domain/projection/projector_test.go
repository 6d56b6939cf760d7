package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gig-weather/internal/domain/city"
	"gig-weather/internal/domain/entity"
	"gig-weather/internal/domain/forecastcache"
	"gig-weather/internal/domain/model"
)

func gig(id, title, date, cityID string, outdoor bool) entity.Gig {
	return entity.Gig{ID: id, Title: title, Date: date, CityID: cityID, IsOutdoor: outdoor, CreatedAt: time.Now()}
}

func successEntry(cityID string, days ...model.ForecastDay) forecastcache.Entry {
	return forecastcache.Entry{CityID: cityID, Result: model.SuccessResult(days), FetchedAt: time.Now()}
}

func failureEntry(cityID string, result model.ForecastResult) forecastcache.Entry {
	return forecastcache.Entry{CityID: cityID, Result: result, FetchedAt: time.Now()}
}

func TestProject_OneRecordPerGigInOrder(t *testing.T) {
	gigs := []entity.Gig{
		gig("g1", "Album release", "2026-09-04", "oulu", true),
		gig("g2", "Acoustic night", "2026-09-05", "turku", false),
		gig("g3", "Festival slot", "2026-09-06", "oulu", true),
	}

	views, missing := Project(Input{Gigs: gigs, Cache: nil, Directory: city.DefaultDirectory()})

	require.Len(t, views, len(gigs))
	assert.Equal(t, "g1", views[0].GigID)
	assert.Equal(t, "g2", views[1].GigID)
	assert.Equal(t, "g3", views[2].GigID)
	for _, v := range views {
		assert.Equal(t, model.StatusLoading, v.Status)
	}
	// distinct city ids only, in first-seen order
	assert.Equal(t, []string{"oulu", "turku"}, missing)
}

func TestProject_UnknownCityNeedsNoFetch(t *testing.T) {
	gigs := []entity.Gig{gig("g1", "Wedding set", "2026-09-04", "atlantis", true)}

	views, missing := Project(Input{Gigs: gigs, Cache: nil, Directory: city.DefaultDirectory()})

	require.Len(t, views, 1)
	assert.Equal(t, model.StatusCityNotFound, views[0].Status)
	assert.Empty(t, missing)
}

func TestProject_FreetextModeFetchesAnyCityName(t *testing.T) {
	gigs := []entity.Gig{gig("g1", "Club gig", "2026-09-04", "Reykjavik", true)}

	views, missing := Project(Input{Gigs: gigs, Cache: nil, Directory: nil})

	require.Len(t, views, 1)
	assert.Equal(t, model.StatusLoading, views[0].Status)
	assert.Equal(t, []string{"Reykjavik"}, missing)
}

func TestProject_TrimsCityIDBeforeLookup(t *testing.T) {
	gigs := []entity.Gig{gig("g1", "Bar night", "2026-09-04", "  oulu  ", true)}
	cache := map[string]forecastcache.Entry{
		"oulu": successEntry("oulu", model.ForecastDay{Date: "2026-09-04", TempMaxC: 20, WindSpeedMaxKmh: 5}),
	}

	views, missing := Project(Input{Gigs: gigs, Cache: cache, Directory: city.DefaultDirectory()})

	require.Len(t, views, 1)
	assert.Equal(t, model.StatusAvailable, views[0].Status)
	assert.Empty(t, missing)
}

func TestProject_FailureStatuses(t *testing.T) {
	gigs := []entity.Gig{
		gig("g1", "A", "2026-09-04", "oulu", true),
		gig("g2", "B", "2026-09-04", "turku", true),
		gig("g3", "C", "2026-09-04", "pori", true),
	}
	cache := map[string]forecastcache.Entry{
		"oulu":  failureEntry("oulu", model.FailureResult(model.FailureNoForecastData)),
		"turku": failureEntry("turku", model.HTTPFailureResult(502)),
		"pori":  failureEntry("pori", model.FailureResult(model.FailureNetwork)),
	}

	views, missing := Project(Input{Gigs: gigs, Cache: cache, Directory: city.DefaultDirectory()})

	require.Len(t, views, 3)
	assert.Empty(t, missing)

	assert.Equal(t, model.StatusForecastNotAvailableYet, views[0].Status)

	assert.Equal(t, model.StatusError, views[1].Status)
	assert.Equal(t, model.FailureHTTP, views[1].ErrorKind)
	assert.True(t, views[1].Retryable)

	assert.Equal(t, model.StatusError, views[2].Status)
	assert.Equal(t, model.FailureNetwork, views[2].ErrorKind)
	assert.True(t, views[2].Retryable)
}

func TestProject_DateOutsideForecastHorizon(t *testing.T) {
	gigs := []entity.Gig{gig("g1", "Open air", "2026-09-20", "oulu", true)}
	cache := map[string]forecastcache.Entry{
		"oulu": successEntry("oulu", model.ForecastDay{Date: "2026-09-04"}, model.ForecastDay{Date: "2026-09-05"}),
	}

	views, _ := Project(Input{Gigs: gigs, Cache: cache, Directory: city.DefaultDirectory()})

	require.Len(t, views, 1)
	assert.Equal(t, model.StatusForecastNotAvailableYet, views[0].Status)
	assert.Nil(t, views[0].Score)
}

func TestProject_AvailableComputesScore(t *testing.T) {
	gigs := []entity.Gig{gig("g1", "Summer stage", "2026-09-04", "oulu", true)}
	cache := map[string]forecastcache.Entry{
		"oulu": successEntry("oulu", model.ForecastDay{
			Date: "2026-09-04", TempMinC: 18, TempMaxC: 32, PrecipitationSumMm: 0, WindSpeedMaxKmh: 5,
		}),
	}

	views, _ := Project(Input{Gigs: gigs, Cache: cache, Directory: city.DefaultDirectory()})

	require.Len(t, views, 1)
	v := views[0]
	assert.Equal(t, model.StatusAvailable, v.Status)
	require.NotNil(t, v.Score)
	assert.Equal(t, 82, *v.Score)
	assert.Equal(t, "great", v.Recommendation)
	require.NotNil(t, v.Summary)
	assert.Equal(t, "2026-09-04", v.Summary.Date)
}

func TestProjectDetail_IncludesBreakdown(t *testing.T) {
	g := gig("g1", "Summer stage", "2026-09-04", "oulu", true)
	cache := map[string]forecastcache.Entry{
		"oulu": successEntry("oulu", model.ForecastDay{
			Date: "2026-09-04", TempMaxC: 32, PrecipitationSumMm: 0, WindSpeedMaxKmh: 5,
		}),
	}

	detail := ProjectDetail(g, Input{Cache: cache, Directory: city.DefaultDirectory()})

	assert.Equal(t, model.StatusAvailable, detail.Status)
	require.NotNil(t, detail.Breakdown)
	assert.Equal(t, 18, detail.Breakdown.TempPenalty)
	assert.Equal(t, 82, detail.Breakdown.Score)
}

func TestProjectDetail_NoBreakdownWithoutForecastDay(t *testing.T) {
	g := gig("g1", "Summer stage", "2026-09-04", "oulu", true)

	detail := ProjectDetail(g, Input{Directory: city.DefaultDirectory()})

	assert.Equal(t, model.StatusLoading, detail.Status)
	assert.Nil(t, detail.Breakdown)
}
