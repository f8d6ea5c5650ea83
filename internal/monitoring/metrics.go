// Package monitoring collects prometheus metrics for the procurement
// workflow: per-vendor submission outcomes and distribution batch totals.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector counts distribution activity for the metrics endpoint.
type MetricsCollector struct {
	registry *prometheus.Registry

	submissions      *prometheus.CounterVec
	batches          *prometheus.CounterVec
	itemsDistributed prometheus.Counter
}

// NewMetricsCollector creates a collector with its own registry.
func NewMetricsCollector() *MetricsCollector {
	registry := prometheus.NewRegistry()

	submissions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_submissions_total",
			Help: "Purchase-order submissions per outcome",
		},
		[]string{"outcome"},
	)

	batches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "distribution_batches_total",
			Help: "Distribution batches per outcome",
		},
		[]string{"outcome"},
	)

	itemsDistributed := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "items_distributed_total",
			Help: "Items placed on successful purchase orders",
		},
	)

	registry.MustRegister(submissions, batches, itemsDistributed)

	return &MetricsCollector{
		registry:         registry,
		submissions:      submissions,
		batches:          batches,
		itemsDistributed: itemsDistributed,
	}
}

// Registry exposes the collector's registry for the metrics HTTP handler.
func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// RecordSubmission counts one per-vendor submission outcome.
func (m *MetricsCollector) RecordSubmission(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

// RecordBatch counts one finished batch and the items it placed.
func (m *MetricsCollector) RecordBatch(outcome string, itemCount int) {
	m.batches.WithLabelValues(outcome).Inc()
	if itemCount > 0 {
		m.itemsDistributed.Add(float64(itemCount))
	}
}
