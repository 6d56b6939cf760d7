package projection

import (
	"strings"

	"gig-weather/internal/domain/city"
	"gig-weather/internal/domain/entity"
	"gig-weather/internal/domain/forecastcache"
	"gig-weather/internal/domain/logic"
	"gig-weather/internal/domain/model"
)

// Input is one projection pass: the authoritative gig collection and the
// coordinator's cache snapshot. Directory is nil in freetext mode, in which
// case no directory validation happens and every city reference is fetchable.
type Input struct {
	Gigs      []entity.Gig
	Cache     map[string]forecastcache.Entry
	Directory *city.Directory
}

// Project merges the gig collection with the cache snapshot into the ordered
// list of presentation records, exactly one per gig and in gig order. It is
// a pure function: the second return value lists the distinct city ids that
// have no cache entry yet, for the caller to hand to EnsureFetched.
func Project(in Input) ([]model.GigWeatherView, []string) {
	views := make([]model.GigWeatherView, 0, len(in.Gigs))
	var missing []string
	seen := make(map[string]struct{})

	for _, gig := range in.Gigs {
		cityID := strings.TrimSpace(gig.CityID)
		view := model.GigWeatherView{
			GigID:     gig.ID,
			Title:     gig.Title,
			Date:      gig.Date,
			CityID:    gig.CityID,
			IsOutdoor: gig.IsOutdoor,
		}

		if in.Directory != nil {
			if _, ok := in.Directory.ByID(cityID); !ok {
				view.Status = model.StatusCityNotFound
				views = append(views, view)
				continue
			}
		}

		entry, cached := in.Cache[cityID]
		if !cached {
			view.Status = model.StatusLoading
			if cityID != "" {
				if _, dup := seen[cityID]; !dup {
					seen[cityID] = struct{}{}
					missing = append(missing, cityID)
				}
			}
			views = append(views, view)
			continue
		}

		if failure := entry.Result.Failure; failure != nil {
			switch failure.Kind {
			case model.FailureCityNotFound:
				view.Status = model.StatusCityNotFound
			case model.FailureNoForecastData:
				view.Status = model.StatusForecastNotAvailableYet
			default:
				view.Status = model.StatusError
				view.ErrorKind = failure.Kind
				view.Retryable = failure.Retryable()
			}
			views = append(views, view)
			continue
		}

		day := entry.Result.DayFor(gig.Date)
		if day == nil {
			// forecast horizon does not cover the gig's date
			view.Status = model.StatusForecastNotAvailableYet
			views = append(views, view)
			continue
		}

		score := logic.ComputeWeatherScore(gig.IsOutdoor, day.TempMaxC, day.PrecipitationSumMm, day.WindSpeedMaxKmh)
		summary := *day
		view.Status = model.StatusAvailable
		view.Score = &score
		view.Recommendation = logic.Recommendation(score)
		view.Summary = &summary
		views = append(views, view)
	}

	return views, missing
}

// ProjectDetail builds the single-gig detail record, including the full
// score breakdown when a matching forecast day is available.
func ProjectDetail(gig entity.Gig, in Input) model.GigDetailView {
	views, _ := Project(Input{Gigs: []entity.Gig{gig}, Cache: in.Cache, Directory: in.Directory})
	detail := model.GigDetailView{GigWeatherView: views[0], CreatedAt: gig.CreatedAt}
	if detail.Summary != nil {
		breakdown := logic.ComputeScoreBreakdown(
			gig.IsOutdoor,
			detail.Summary.TempMaxC,
			detail.Summary.PrecipitationSumMm,
			detail.Summary.WindSpeedMaxKmh,
		)
		detail.Breakdown = &breakdown
	}
	return detail
}
