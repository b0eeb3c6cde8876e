package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registration module.
type Metrics struct {
	Started        prometheus.Counter
	Submitted      prometheus.Counter
	SubmitDuration prometheus.Histogram
}

// New creates a new Metrics instance with all registration module metrics registered.
func New() *Metrics {
	return &Metrics{
		Started: promauto.NewCounter(prometheus.CounterOpts{
			Name: "supplierhub_registrations_started_total",
			Help: "Total number of onboarding registrations started",
		}),
		Submitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "supplierhub_registrations_submitted_total",
			Help: "Total number of registrations submitted for review",
		}),
		SubmitDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "supplierhub_registration_submit_duration_seconds",
			Help:    "Duration of registration Submit operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveSubmit records the duration of a Submit operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSubmit(start time.Time) {
	m.SubmitDuration.Observe(time.Since(start).Seconds())
}
