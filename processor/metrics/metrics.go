// Package metrics holds the processor's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contains all processor-level metrics
type Metrics struct {
	registry *prometheus.Registry

	MessagesConsumed prometheus.Counter
	BatchesProcessed *prometheus.CounterVec
	RecordsExtracted *prometheus.CounterVec
	AlertsSent       prometheus.Counter
	ParseDuration    prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with its own registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		MessagesConsumed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "telemetry",
				Subsystem: "pipeline",
				Name:      "messages_consumed_total",
				Help:      "Total number of raw messages consumed from the bus",
			},
		),

		BatchesProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "telemetry",
				Subsystem: "pipeline",
				Name:      "batches_processed_total",
				Help:      "Total number of extraction invocations by status",
			},
			[]string{"status"},
		),

		RecordsExtracted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "telemetry",
				Subsystem: "pipeline",
				Name:      "records_extracted_total",
				Help:      "Total number of normalized records extracted by family",
			},
			[]string{"family"},
		),

		AlertsSent: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "telemetry",
				Subsystem: "pipeline",
				Name:      "alerts_sent_total",
				Help:      "Total number of alert notifications emitted",
			},
		),

		ParseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "telemetry",
				Subsystem: "pipeline",
				Name:      "parse_duration_seconds",
				Help:      "Extraction duration per raw message in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}

	m.registry.MustRegister(
		m.MessagesConsumed,
		m.BatchesProcessed,
		m.RecordsExtracted,
		m.AlertsSent,
		m.ParseDuration,
	)

	return m
}

// Handler returns the HTTP handler serving this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
