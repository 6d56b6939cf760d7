package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"gig-weather/internal/domain/forecastcache"
	"gig-weather/pkg/log"
)

// ForecastExpiryScheduler periodically drops cache entries older than the
// configured maximum age so the next projection refetches them. A maximum
// age of zero disables the sweep entirely; by default entries live until
// they are explicitly invalidated.
type ForecastExpiryScheduler struct {
	cron        *cron.Cron
	coordinator *forecastcache.Coordinator
	maxAge      time.Duration
	expression  string
}

func NewForecastExpiryScheduler(coordinator *forecastcache.Coordinator, maxAge time.Duration, expression string) *ForecastExpiryScheduler {
	return &ForecastExpiryScheduler{
		cron:        cron.New(cron.WithSeconds()),
		coordinator: coordinator,
		maxAge:      maxAge,
		expression:  expression,
	}
}

// InitForecastExpiryTasks starts the sweep when a maximum age is configured.
func (scheduler *ForecastExpiryScheduler) InitForecastExpiryTasks() {
	if scheduler.maxAge <= 0 {
		log.Info("forecast cache expiry disabled")
		return
	}

	_, err := scheduler.cron.AddFunc(scheduler.expression, scheduler.SweepExpired)
	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
	log.Infof("forecast cache expiry scheduled: cron=%q maxAge=%s", scheduler.expression, scheduler.maxAge)
}

// SweepExpired drops entries older than the maximum age.
func (scheduler *ForecastExpiryScheduler) SweepExpired() {
	requestID := uuid.New().String()

	expired := scheduler.coordinator.ExpireOlderThan(scheduler.maxAge)
	if expired > 0 {
		log.Info("expired forecast cache entries",
			zap.Int("expired", expired),
			zap.String("request_id", requestID),
		)
	}
}

// Stop gracefully stops the scheduler.
func (scheduler *ForecastExpiryScheduler) Stop() {
	if scheduler.cron != nil {
		ctx := scheduler.cron.Stop()
		<-ctx.Done()
	}
}
