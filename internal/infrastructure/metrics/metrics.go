package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transaction metrics
	SubmissionsTotal *prometheus.CounterVec
	CommitDuration   prometheus.Histogram
	TransactionKinds *prometheus.CounterVec
	ConflictsTotal   prometheus.Counter

	// Account metrics
	AccountsCreated prometheus.Counter

	// Event metrics
	EventsAppended  prometheus.Counter
	EventsPublished *prometheus.CounterVec
	PublishLag      prometheus.Gauge

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Transaction metrics
		SubmissionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerd_submissions_total",
				Help: "Total transaction submissions by kind and outcome",
			},
			[]string{"kind", "status"},
		),
		CommitDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerd_commit_duration_seconds",
			Help:    "Duration of transaction submission through commit",
			Buckets: prometheus.DefBuckets,
		}),
		TransactionKinds: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerd_transactions_total",
				Help: "Total transactions by kind",
			},
			[]string{"kind"},
		),
		ConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerd_version_conflicts_total",
			Help: "Total submissions lost to a version conflict",
		}),

		// Account metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerd_accounts_created_total",
			Help: "Total number of accounts created",
		}),

		// Event metrics
		EventsAppended: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerd_events_appended_total",
			Help: "Total balance change events appended to the log",
		}),
		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerd_events_published_total",
				Help: "Total events delivered, by subscriber",
			},
			[]string{"subscriber"},
		),
		PublishLag: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledgerd_publish_lag_events",
			Help: "Events appended but not yet delivered to the slowest subscriber",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerd_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerd_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerd_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
	}
}
