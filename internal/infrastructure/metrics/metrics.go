package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Obligation metrics
	ObligationsCreated         prometheus.Counter
	InstallmentSeriesGenerated prometheus.Counter
	SettlementsCompleted       prometheus.Counter
	SettlementDuration         prometheus.Histogram
	ObligationErrors           *prometheus.CounterVec

	// Ledger metrics
	EntriesPosted  prometheus.Counter
	EntriesDeleted prometheus.Counter
	EntryAmount    prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Obligation metrics
		ObligationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gocontas_obligations_created_total",
			Help: "Total number of obligations created",
		}),
		InstallmentSeriesGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gocontas_installment_series_total",
			Help: "Total number of installment series generated",
		}),
		SettlementsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gocontas_settlements_completed_total",
			Help: "Total number of obligations settled",
		}),
		SettlementDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gocontas_settlement_duration_seconds",
			Help:    "Duration of settlement operations",
			Buckets: prometheus.DefBuckets,
		}),
		ObligationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gocontas_obligation_errors_total",
				Help: "Total number of obligation errors by type",
			},
			[]string{"error_type"},
		),

		// Ledger metrics
		EntriesPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gocontas_entries_posted_total",
			Help: "Total number of ledger entries posted",
		}),
		EntriesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gocontas_entries_deleted_total",
			Help: "Total number of ledger entries deleted",
		}),
		EntryAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gocontas_entry_amount",
			Help:    "Absolute ledger entry amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gocontas_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gocontas_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gocontas_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gocontas_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "gocontas_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gocontas_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gocontas_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gocontas_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
	}
}
