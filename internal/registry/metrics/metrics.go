// Package metrics provides observability for the registry module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the registry module's Prometheus metrics. A nil receiver is
// safe everywhere so wiring metrics stays optional.
type Metrics struct {
	// Lookup latency by outcome status
	LookupLatency *prometheus.HistogramVec

	// Cache hits and misses
	CacheAccess *prometheus.CounterVec
}

// New creates and registers the registry metrics.
func New() *Metrics {
	return &Metrics{
		LookupLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "estagio_registry_lookup_duration_seconds",
			Help:    "Duration of external registry lookups by outcome",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"status"}),

		CacheAccess: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "estagio_registry_cache_access_total",
			Help: "Registry lookup cache accesses by result",
		}, []string{"result"}), // result: "hit", "miss"
	}
}

// ObserveLookup records the duration of one registry lookup.
func (m *Metrics) ObserveLookup(status string, d time.Duration) {
	if m != nil {
		m.LookupLatency.WithLabelValues(status).Observe(d.Seconds())
	}
}

// IncrementCache records a cache hit or miss.
func (m *Metrics) IncrementCache(result string) {
	if m != nil {
		m.CacheAccess.WithLabelValues(result).Inc()
	}
}
