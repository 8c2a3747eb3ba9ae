// Package metrics holds the Prometheus instrumentation for the lifecycle
// orchestrators.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the lifecycle service.
type Metrics struct {
	Exports           *prometheus.CounterVec
	Erasures          *prometheus.CounterVec
	Restrictions      *prometheus.CounterVec
	BulkErasures      *prometheus.CounterVec
	BulkUsers         prometheus.Counter
	ComponentFailures *prometheus.CounterVec
	OperationSeconds  *prometheus.HistogramVec
}

// New creates and registers all lifecycle metrics on the default registerer.
func New() *Metrics {
	return &Metrics{
		Exports: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "custodian_exports_total",
			Help: "Export packages assembled, by completeness",
		}, []string{"complete"}),
		Erasures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "custodian_erasures_total",
			Help: "Single-user erasures, by terminal status",
		}, []string{"status"}),
		Restrictions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "custodian_restrictions_total",
			Help: "Restriction flips, by operation and terminal status",
		}, []string{"operation", "status"}),
		BulkErasures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "custodian_bulk_erasures_total",
			Help: "Bulk erasure runs, by aggregate status",
		}, []string{"status"}),
		BulkUsers: promauto.NewCounter(prometheus.CounterOpts{
			Name: "custodian_bulk_erasure_users_total",
			Help: "Users processed by bulk erasure runs",
		}),
		ComponentFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "custodian_component_failures_total",
			Help: "Per-component failures across all lifecycle operations",
		}, []string{"component", "operation"}),
		OperationSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "custodian_operation_duration_seconds",
			Help:    "Wall time of lifecycle operations",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"operation"}),
	}
}

// ObserveOperation records one operation's wall time.
func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.OperationSeconds.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// IncComponentFailure records one component failure.
func (m *Metrics) IncComponentFailure(component, operation string) {
	if m == nil {
		return
	}
	m.ComponentFailures.WithLabelValues(component, operation).Inc()
}
