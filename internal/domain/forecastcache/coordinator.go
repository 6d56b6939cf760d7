package forecastcache

import (
	"context"
	"strings"
	"sync"
	"time"

	"gig-weather/internal/domain/city"
	"gig-weather/internal/domain/model"
	"gig-weather/pkg/log"
)

// Fetcher retrieves the daily forecast for one city reference. A city
// reference is a directory id in directory mode or a free-text name in
// freetext mode. Implementations perform a single upstream call per
// invocation; caching and deduplication live here.
type Fetcher interface {
	FetchCity(ctx context.Context, cityRef string) model.ForecastResult
}

// Entry is one completed fetch outcome for a city. Entries are written
// whole under the coordinator lock and never partially updated.
type Entry struct {
	CityID    string
	Result    model.ForecastResult
	FetchedAt time.Time
}

// Coordinator owns the per-city forecast cache and the in-flight set. It is
// a single-writer actor: every read and write of cache and inFlight happens
// under one mutex. Fetch goroutines never touch the maps themselves; they
// deliver their result back through complete().
//
// Invariants:
//   - at most one fetch is in flight per city at any instant
//   - a stored Entry is internally consistent (result and timestamp agree)
//   - Invalidate never cancels an in-flight fetch; the fetch completes and
//     overwrites, which is harmless because entries are keyed by city
type Coordinator struct {
	mu       sync.Mutex
	cache    map[string]Entry
	inFlight map[string]struct{}

	fetcher   Fetcher
	directory *city.Directory // nil in freetext mode
	changes   chan struct{}
	now       func() time.Time
}

func New(fetcher Fetcher, directory *city.Directory) *Coordinator {
	return &Coordinator{
		cache:     make(map[string]Entry),
		inFlight:  make(map[string]struct{}),
		fetcher:   fetcher,
		directory: directory,
		changes:   make(chan struct{}, 1),
		now:       time.Now,
	}
}

// Changes signals after any cache write. The channel coalesces: consumers
// receive at least one signal per burst of writes and re-read Snapshot.
func (c *Coordinator) Changes() <-chan struct{} {
	return c.changes
}

// EnsureFetched launches a fetch for every city that has no cache entry and
// no in-flight fetch. Repeated calls for an already cached or in-flight city
// are no-ops. In directory mode an unknown id is recorded synchronously as a
// CityNotFound entry without any network call.
//
// Fetches outlive the caller's context on purpose: deleting a gig or closing
// the originating request does not cancel a fetch already under way.
func (c *Coordinator) EnsureFetched(ctx context.Context, cityIDs []string) {
	c.mu.Lock()
	var launched []string
	wroteSync := false
	for _, raw := range cityIDs {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if _, ok := c.cache[id]; ok {
			continue
		}
		if _, ok := c.inFlight[id]; ok {
			continue
		}
		if c.directory != nil {
			if _, ok := c.directory.ByID(id); !ok {
				c.cache[id] = Entry{
					CityID:    id,
					Result:    model.FailureResult(model.FailureCityNotFound),
					FetchedAt: c.now(),
				}
				wroteSync = true
				continue
			}
		}
		c.inFlight[id] = struct{}{}
		launched = append(launched, id)
	}
	c.mu.Unlock()

	if wroteSync {
		c.signal()
	}
	for _, id := range launched {
		go c.fetch(context.WithoutCancel(ctx), id)
	}
}

func (c *Coordinator) fetch(ctx context.Context, cityID string) {
	result := c.fetcher.FetchCity(ctx, cityID)
	if result.OK() {
		log.Debugw("forecast fetched", "city", cityID, "days", len(result.Days))
	} else {
		log.Warnw("forecast fetch failed", "city", cityID, "kind", result.Failure.Kind, "detail", result.Failure.Detail)
	}
	c.complete(cityID, result)
}

// complete writes the fetch outcome, clears the in-flight mark and signals.
// Failures are stored too: a failing city must not block others, and the
// stored entry lets the caller render a terminal status or a retry action
// instead of spinning forever.
func (c *Coordinator) complete(cityID string, result model.ForecastResult) {
	c.mu.Lock()
	c.cache[cityID] = Entry{CityID: cityID, Result: result, FetchedAt: c.now()}
	delete(c.inFlight, cityID)
	c.mu.Unlock()
	c.signal()
}

// Invalidate removes the cache entry for a city so the next EnsureFetched
// starts a fresh request. It does not touch the in-flight set: a fetch
// already running completes and overwrites. Returns whether an entry was
// removed.
func (c *Coordinator) Invalidate(cityID string) bool {
	id := strings.TrimSpace(cityID)
	c.mu.Lock()
	_, existed := c.cache[id]
	delete(c.cache, id)
	c.mu.Unlock()
	return existed
}

// Snapshot returns a copy of the cache for one projection pass. It never
// blocks on in-flight fetches.
func (c *Coordinator) Snapshot() map[string]Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := make(map[string]Entry, len(c.cache))
	for id, entry := range c.cache {
		snap[id] = entry
	}
	return snap
}

// ExpireOlderThan drops entries fetched more than maxAge ago and returns how
// many were dropped. Entries otherwise live for the process lifetime; the
// expiry sweep is an optional policy layered on top.
func (c *Coordinator) ExpireOlderThan(maxAge time.Duration) int {
	cutoff := c.now().Add(-maxAge)
	c.mu.Lock()
	expired := 0
	for id, entry := range c.cache {
		if entry.FetchedAt.Before(cutoff) {
			delete(c.cache, id)
			expired++
		}
	}
	c.mu.Unlock()
	if expired > 0 {
		c.signal()
	}
	return expired
}

func (c *Coordinator) signal() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}
