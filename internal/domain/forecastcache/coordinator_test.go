package forecastcache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gig-weather/internal/domain/city"
	"gig-weather/internal/domain/model"
)

type stubFetcher struct {
	calls   atomic.Int64
	gate    chan struct{} // when set, FetchCity blocks until closed
	results func(cityRef string) model.ForecastResult
}

func (f *stubFetcher) FetchCity(_ context.Context, cityRef string) model.ForecastResult {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	if f.results != nil {
		return f.results(cityRef)
	}
	return model.SuccessResult([]model.ForecastDay{{Date: "2026-09-01", TempMaxC: 20}})
}

func waitForEntry(t *testing.T, c *Coordinator, cityID string) Entry {
	t.Helper()
	var entry Entry
	require.Eventually(t, func() bool {
		snap := c.Snapshot()
		e, ok := snap[cityID]
		entry = e
		return ok
	}, 2*time.Second, 5*time.Millisecond)
	return entry
}

func TestEnsureFetched_DeduplicatesConcurrentRequests(t *testing.T) {
	fetcher := &stubFetcher{gate: make(chan struct{})}
	coordinator := New(fetcher, city.DefaultDirectory())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			coordinator.EnsureFetched(context.Background(), []string{"oulu"})
		}()
	}
	wg.Wait()

	close(fetcher.gate)
	entry := waitForEntry(t, coordinator, "oulu")

	assert.EqualValues(t, 1, fetcher.calls.Load())
	assert.True(t, entry.Result.OK())
}

func TestEnsureFetched_IsIdempotentOncePopulated(t *testing.T) {
	fetcher := &stubFetcher{}
	coordinator := New(fetcher, city.DefaultDirectory())

	coordinator.EnsureFetched(context.Background(), []string{"oulu"})
	first := waitForEntry(t, coordinator, "oulu")

	coordinator.EnsureFetched(context.Background(), []string{"oulu"})
	second := waitForEntry(t, coordinator, "oulu")

	assert.EqualValues(t, 1, fetcher.calls.Load())
	assert.Equal(t, first.FetchedAt, second.FetchedAt)
}

func TestEnsureFetched_UnknownCityRecordedWithoutFetch(t *testing.T) {
	fetcher := &stubFetcher{}
	coordinator := New(fetcher, city.DefaultDirectory())

	coordinator.EnsureFetched(context.Background(), []string{"atlantis"})

	entry := waitForEntry(t, coordinator, "atlantis")
	require.NotNil(t, entry.Result.Failure)
	assert.Equal(t, model.FailureCityNotFound, entry.Result.Failure.Kind)
	assert.EqualValues(t, 0, fetcher.calls.Load())

	select {
	case <-coordinator.Changes():
	default:
		t.Fatal("expected a change signal for the synchronous not-found entry")
	}
}

func TestEnsureFetched_FreetextModeSkipsDirectoryValidation(t *testing.T) {
	fetcher := &stubFetcher{}
	coordinator := New(fetcher, nil)

	coordinator.EnsureFetched(context.Background(), []string{"Reykjavik"})

	entry := waitForEntry(t, coordinator, "Reykjavik")
	assert.True(t, entry.Result.OK())
	assert.EqualValues(t, 1, fetcher.calls.Load())
}

func TestEnsureFetched_StoresFailuresPerCity(t *testing.T) {
	fetcher := &stubFetcher{results: func(cityRef string) model.ForecastResult {
		if cityRef == "oulu" {
			return model.HTTPFailureResult(503)
		}
		return model.SuccessResult([]model.ForecastDay{{Date: "2026-09-01"}})
	}}
	coordinator := New(fetcher, city.DefaultDirectory())

	coordinator.EnsureFetched(context.Background(), []string{"oulu", "turku"})

	failed := waitForEntry(t, coordinator, "oulu")
	ok := waitForEntry(t, coordinator, "turku")

	require.NotNil(t, failed.Result.Failure)
	assert.Equal(t, model.FailureHTTP, failed.Result.Failure.Kind)
	assert.Equal(t, 503, failed.Result.Failure.HTTPStatus)
	assert.True(t, failed.Result.Failure.Retryable())
	assert.True(t, ok.Result.OK())
}

func TestInvalidate_ThenEnsureFetchedIssuesOneFreshFetch(t *testing.T) {
	fetcher := &stubFetcher{}
	coordinator := New(fetcher, city.DefaultDirectory())

	coordinator.EnsureFetched(context.Background(), []string{"oulu"})
	waitForEntry(t, coordinator, "oulu")

	require.True(t, coordinator.Invalidate("oulu"))
	_, present := coordinator.Snapshot()["oulu"]
	require.False(t, present)

	coordinator.EnsureFetched(context.Background(), []string{"oulu"})
	waitForEntry(t, coordinator, "oulu")

	assert.EqualValues(t, 2, fetcher.calls.Load())
}

func TestInvalidate_MissingEntryReturnsFalse(t *testing.T) {
	coordinator := New(&stubFetcher{}, city.DefaultDirectory())
	assert.False(t, coordinator.Invalidate("oulu"))
}

func TestSnapshot_IsIsolatedFromLaterWrites(t *testing.T) {
	fetcher := &stubFetcher{}
	coordinator := New(fetcher, city.DefaultDirectory())

	coordinator.EnsureFetched(context.Background(), []string{"oulu"})
	waitForEntry(t, coordinator, "oulu")

	snap := coordinator.Snapshot()
	delete(snap, "oulu")

	_, present := coordinator.Snapshot()["oulu"]
	assert.True(t, present)
}

func TestExpireOlderThan_DropsOnlyStaleEntries(t *testing.T) {
	fetcher := &stubFetcher{}
	coordinator := New(fetcher, city.DefaultDirectory())

	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	coordinator.now = func() time.Time { return base }
	coordinator.EnsureFetched(context.Background(), []string{"oulu"})
	waitForEntry(t, coordinator, "oulu")

	coordinator.now = func() time.Time { return base.Add(2 * time.Hour) }
	coordinator.EnsureFetched(context.Background(), []string{"turku"})
	waitForEntry(t, coordinator, "turku")

	expired := coordinator.ExpireOlderThan(time.Hour)

	assert.Equal(t, 1, expired)
	snap := coordinator.Snapshot()
	_, oulu := snap["oulu"]
	_, turku := snap["turku"]
	assert.False(t, oulu)
	assert.True(t, turku)
}
