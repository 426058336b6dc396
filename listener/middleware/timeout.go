package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Timeout returns a middleware that bounds request processing. A handler that
// has not finished within duration has its context cancelled and the client
// gets 503 Service Unavailable. Non-positive durations fall back to 30s.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	if duration <= 0 {
		slog.Warn("middleware: duration must be positive, using default",
			"provided", duration, "default", defaultTimeout)

		duration = defaultTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, duration, "Service Unavailable")
	}
}
