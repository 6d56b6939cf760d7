package api

import (
	"context"
	"errors"
	"strings"

	"gig-weather/internal/domain/entity"
	"gig-weather/internal/domain/model"
	"gig-weather/pkg/log"
	"gig-weather/pkg/redis"
)

// cachedGeocode is the Redis payload for one resolved name. NotFound entries
// are cached too so unknown names do not hit the provider on every refresh.
type cachedGeocode struct {
	City     entity.City `json:"city"`
	NotFound bool        `json:"notFound"`
}

// GeocodeCache is the subset of the Redis cache the decorator needs.
type GeocodeCache interface {
	Get(ctx context.Context, key string, dest any) error
	Put(ctx context.Context, key string, value any) error
}

// cachingGeocodingGateway decorates a GeocodingGateway with a Redis cache.
// Transient failures are never cached.
type cachingGeocodingGateway struct {
	delegate GeocodingGateway
	cache    GeocodeCache
}

// NewCachingGeocodingGateway wraps delegate so repeated lookups of the same
// name are served from the cache.
func NewCachingGeocodingGateway(delegate GeocodingGateway, cache GeocodeCache) GeocodingGateway {
	return &cachingGeocodingGateway{
		delegate: delegate,
		cache:    cache,
	}
}

// SearchCity resolves the city with the given name, consulting the cache first.
func (g *cachingGeocodingGateway) SearchCity(ctx context.Context, name string) (entity.City, *model.ForecastFailure) {
	key := strings.ToLower(strings.TrimSpace(name))

	var cached cachedGeocode
	err := g.cache.Get(ctx, key, &cached)
	if err == nil {
		if cached.NotFound {
			return entity.City{}, &model.ForecastFailure{Kind: model.FailureCityNotFound}
		}
		return cached.City, nil
	}
	if !errors.Is(err, redis.ErrCacheMiss) {
		log.Warnw("geocode cache read failed", "name", name, "error", err)
	}

	city, failure := g.delegate.SearchCity(ctx, name)
	if failure == nil {
		g.put(ctx, key, cachedGeocode{City: city})
	} else if failure.Kind == model.FailureCityNotFound {
		g.put(ctx, key, cachedGeocode{NotFound: true})
	}
	return city, failure
}

func (g *cachingGeocodingGateway) put(ctx context.Context, key string, value cachedGeocode) {
	if err := g.cache.Put(ctx, key, value); err != nil {
		log.Warnw("geocode cache write failed", "name", key, "error", err)
	}
}
