package http

import (
	"time"

	"gig-weather/pkg/log"
)

// HTTPLogger receives notifications about outgoing requests and their outcome.
type HTTPLogger interface {
	LogRequest(method, url string)
	LogResponseSuccess(method, url string, status int, latency time.Duration)
	LogResponseError(method, url string, status int, latency time.Duration, err error)
}

// ZapHTTPLogger logs request lifecycle events through the application logger.
type ZapHTTPLogger struct{}

// NewZapHTTPLogger creates a new ZapHTTPLogger.
func NewZapHTTPLogger() *ZapHTTPLogger {
	return &ZapHTTPLogger{}
}

func (l *ZapHTTPLogger) LogRequest(method, url string) {
	log.Debugw("http request started",
		"method", method,
		"url", url,
	)
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, url string, status int, latency time.Duration) {
	log.Debugw("http request finished",
		"method", method,
		"url", url,
		"status", status,
		"latency", latency.String(),
	)
}

func (l *ZapHTTPLogger) LogResponseError(method, url string, status int, latency time.Duration, err error) {
	log.Warnw("http request failed",
		"method", method,
		"url", url,
		"status", status,
		"latency", latency.String(),
		"error", err,
	)
}
