package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Requests counts gateway requests by operation and response status.
	Requests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "The total number of gateway requests",
		},
		[]string{"operation", "status"},
	)

	// RequestDuration tracks how long each operation takes end to end.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "The duration of gateway requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// InFlightRequests is the number of requests currently being served.
	InFlightRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gateway_in_flight_requests",
			Help: "The number of requests currently being served",
		},
	)

	// StaleEventsDeleted counts events removed by cleanup.
	StaleEventsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_stale_events_deleted_total",
			Help: "The total number of stale events deleted",
		},
	)

	// UploadedBytes counts bytes of accepted uploads.
	UploadedBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_uploaded_bytes_total",
			Help: "The total number of bytes uploaded",
		},
	)
)
