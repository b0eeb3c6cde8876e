package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the selection module.
type Metrics struct {
	Confirmed        prometheus.Counter
	CategorySwitches prometheus.Counter
	RejectedToggles  prometheus.Counter
}

// New creates a new Metrics instance with all selection module metrics registered.
func New() *Metrics {
	return &Metrics{
		Confirmed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "supplierhub_selection_confirmed_total",
			Help: "Total number of confirmed category selections",
		}),
		// Switching categories silently discards subcategory choices.
		// Product wants to see how often that lossy path fires before
		// deciding whether it needs a confirmation prompt.
		CategorySwitches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "supplierhub_selection_category_switches_total",
			Help: "Category switches that discarded prior subcategory choices",
		}),
		RejectedToggles: promauto.NewCounter(prometheus.CounterOpts{
			Name: "supplierhub_selection_rejected_toggles_total",
			Help: "Subcategory toggles rejected for not belonging to the locked category",
		}),
	}
}
