package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector tracks ledger operation outcomes for the /metrics endpoint.
type Collector struct {
	registry          *prometheus.Registry
	mutationsTotal    *prometheus.CounterVec
	mutationsRejected *prometheus.CounterVec
	mutationDuration  prometheus.Histogram
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		mutationsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_mutations_total",
			Help: "Committed ledger mutations by operation",
		}, []string{"operation"}),
		mutationsRejected: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_mutations_rejected_total",
			Help: "Rejected ledger mutations by operation and reason",
		}, []string{"operation", "reason"}),
		mutationDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_mutation_duration_seconds",
			Help:    "Time taken to apply a ledger mutation",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordMutation records a committed mutation.
func (c *Collector) RecordMutation(operation string, duration time.Duration) {
	c.mutationsTotal.WithLabelValues(operation).Inc()
	c.mutationDuration.Observe(duration.Seconds())
}

// RecordRejection records a mutation rejected by a business precondition.
func (c *Collector) RecordRejection(operation, reason string) {
	c.mutationsRejected.WithLabelValues(operation, reason).Inc()
}

// Handler returns the HTTP handler serving this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
