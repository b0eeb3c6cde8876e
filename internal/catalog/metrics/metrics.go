package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the catalog module.
type Metrics struct {
	CacheHits    prometheus.Counter
	CacheMisses  prometheus.Counter
	Fallbacks    prometheus.Counter
	ListDuration prometheus.Histogram
}

// New creates a new Metrics instance with all catalog module metrics registered.
func New() *Metrics {
	return &Metrics{
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "supplierhub_catalog_cache_hits_total",
			Help: "Catalog reads served from the Redis cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "supplierhub_catalog_cache_misses_total",
			Help: "Catalog reads that fell through to the store",
		}),
		Fallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "supplierhub_catalog_fallbacks_total",
			Help: "Catalog reads served from the built-in default catalog after store failure",
		}),
		ListDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "supplierhub_catalog_list_duration_seconds",
			Help:    "Duration of catalog List operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveList records the duration of a List operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveList(start time.Time) {
	m.ListDuration.Observe(time.Since(start).Seconds())
}
