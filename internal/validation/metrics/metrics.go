// Package metrics provides observability for the validation module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the validation module's Prometheus metrics. Methods are
// nil-safe so metrics stay optional in tests.
type Metrics struct {
	// Document outcomes
	DocumentOutcome *prometheus.CounterVec

	// Failed checks by field role
	CheckFailures *prometheus.CounterVec

	// Full document validation latency, registry phase included
	ValidateLatency prometheus.Histogram
}

// New creates and registers the validation metrics.
func New() *Metrics {
	return &Metrics{
		DocumentOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "estagio_validation_documents_total",
			Help: "Validated documents by overall outcome",
		}, []string{"outcome"}), // outcome: "valid", "invalid"

		CheckFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "estagio_validation_check_failures_total",
			Help: "Failed field checks by role",
		}, []string{"role"}),

		ValidateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "estagio_validation_duration_seconds",
			Help:    "Duration of full document validation including registry lookups",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementOutcome records one validated document.
func (m *Metrics) IncrementOutcome(valid bool) {
	if m != nil {
		outcome := "invalid"
		if valid {
			outcome = "valid"
		}
		m.DocumentOutcome.WithLabelValues(outcome).Inc()
	}
}

// IncrementCheckFailure records a failed field check.
func (m *Metrics) IncrementCheckFailure(role string) {
	if m != nil {
		m.CheckFailures.WithLabelValues(role).Inc()
	}
}

// ObserveValidateLatency records the total validation duration.
func (m *Metrics) ObserveValidateLatency(d time.Duration) {
	if m != nil {
		m.ValidateLatency.Observe(d.Seconds())
	}
}
