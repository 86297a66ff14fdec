package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// composition service.
type Metrics struct {
	ComposeRequests *prometheus.CounterVec // labels: mode={storm,regional}, outcome={ok,bad_request}
	ComposeDuration prometheus.Histogram
	SeverityLevels  *prometheus.CounterVec // labels: level={1,2,3,4}

	// Kafka sink metrics.
	NotificationsPublished prometheus.Counter
	PublishErrors          prometheus.Counter
	PublisherEnabled       prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ComposeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "iw_generator",
			Name:      "compose_requests_total",
			Help:      "Compose requests by mode and outcome.",
		}, []string{"mode", "outcome"}),
		ComposeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "iw_generator",
			Name:      "compose_duration_seconds",
			Help:      "Duration of a full compose (resolve, headline, description).",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		SeverityLevels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "iw_generator",
			Name:      "severity_levels_total",
			Help:      "Composed notifications by final severity level.",
		}, []string{"level"}),
		NotificationsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "iw_generator",
			Name:      "notifications_published_total",
			Help:      "Notifications published to the Kafka sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "iw_generator",
			Name:      "publish_errors_total",
			Help:      "Failed publishes to the Kafka sink topic.",
		}),
		PublisherEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "iw_generator",
			Name:      "publisher_enabled",
			Help:      "1 when the Kafka sink is configured, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.ComposeRequests,
		m.ComposeDuration,
		m.SeverityLevels,
		m.NotificationsPublished,
		m.PublishErrors,
		m.PublisherEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ComposeRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "iw_generator", Name: "compose_requests_total"}, []string{"mode", "outcome"}),
		ComposeDuration:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "iw_generator", Name: "compose_duration_seconds"}),
		SeverityLevels:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "iw_generator", Name: "severity_levels_total"}, []string{"level"}),
		NotificationsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "iw_generator", Name: "notifications_published_total"}),
		PublishErrors:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "iw_generator", Name: "publish_errors_total"}),
		PublisherEnabled:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "iw_generator", Name: "publisher_enabled"}),
	}
}
