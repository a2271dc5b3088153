package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DBPoolAcquiredConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notes_db_pool_acquired_connections",
			Help: "Connections currently checked out of the notes pool",
		},
	)

	DBPoolIdleConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notes_db_pool_idle_connections",
			Help: "Idle connections held by the notes pool",
		},
	)

	DBPoolMaxConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notes_db_pool_max_connections",
			Help: "Configured upper bound of the notes pool",
		},
	)

	DBPoolTotalConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notes_db_pool_total_connections",
			Help: "Open connections in the notes pool",
		},
	)

	DBConnectAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_db_connect_attempts_total",
			Help: "Startup connection attempts by result",
		},
		[]string{"result"},
	)

	DBSchemaVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notes_db_schema_version",
			Help: "Migration version applied at startup",
		},
	)

	DBQueryDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notes_db_query_duration_seconds",
			Help:    "Duration of store statements in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_db_query_errors_total",
			Help: "Failed store statements by operation and error type",
		},
		[]string{"operation", "table", "error_type"},
	)
)
