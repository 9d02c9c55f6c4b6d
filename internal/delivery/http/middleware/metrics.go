package middleware

import (
	"net/http"
	"strconv"
	"time"

	"eventsgateway/internal/metrics"
)

// Metrics wraps an HTTP handler with Prometheus metrics labelled by operation.
func Metrics(next http.HandlerFunc, operation string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.InFlightRequests.Inc()
		defer metrics.InFlightRequests.Dec()

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next(rw, r)

		metrics.RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		metrics.Requests.WithLabelValues(operation, strconv.Itoa(rw.status)).Inc()
	}
}
