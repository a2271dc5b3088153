package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotesRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path"},
	)

	NotesRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notes_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	NotesRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notes_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	NoteOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "note_operations_total",
			Help: "Total number of note operations by operation and result",
		},
		[]string{"operation", "result"},
	)
)
