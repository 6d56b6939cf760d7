package cache

import (
	"context"
	"time"

	"gig-weather/internal/domain/model"
	"gig-weather/pkg/redis"
)

type HealthCacheGateway interface {
	Health() model.ComponentHealthStatus
}

// RedisHealthCacheGateway reports the health of the Redis geocode cache.
type RedisHealthCacheGateway struct {
	client *redis.Client
}

var _ HealthCacheGateway = (*RedisHealthCacheGateway)(nil)

func NewRedisHealthCacheGateway(client *redis.Client) *RedisHealthCacheGateway {
	return &RedisHealthCacheGateway{client: client}
}

func (gateway *RedisHealthCacheGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := gateway.client.Ping(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
			"addr":    gateway.client.GetConfig().Addr,
		},
	}
}

// DisabledHealthCacheGateway is used when Redis is not configured.
type DisabledHealthCacheGateway struct{}

var _ HealthCacheGateway = (*DisabledHealthCacheGateway)(nil)

func NewDisabledHealthCacheGateway() *DisabledHealthCacheGateway {
	return &DisabledHealthCacheGateway{}
}

func (gateway *DisabledHealthCacheGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUnknown,
		Details: map[string]string{
			"message": "cache disabled",
		},
	}
}
