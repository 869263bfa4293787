package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Computation outcomes, used as the "outcome" label.
const (
	outcomeComputed      = "computed"
	outcomeCached        = "cached"
	outcomeNegativeCycle = "negative_cycle"
	outcomeError         = "error"
)

type metrics struct {
	computations    *prometheus.CounterVec
	computeDuration prometheus.Histogram
	mismatches      prometheus.Counter
	requests        *prometheus.CounterVec
}

// newMetrics registers the service collectors on reg. Each Server owns its
// registry so tests can build many servers in one process.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		// Labels: "computed", "cached", "negative_cycle", "error"
		computations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "routeplan_computations_total",
			Help: "Shortest-path computations by outcome",
		}, []string{"outcome"}),

		computeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "routeplan_compute_duration_seconds",
			Help:    "Engine compute duration, cache hits included",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),

		mismatches: factory.NewCounter(prometheus.CounterOpts{
			Name: "routeplan_path_mismatches_total",
			Help: "Reconstructed paths whose edge sum differs from the reported distance",
		}),

		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "routeplan_http_requests_total",
			Help: "HTTP requests by route template and status code",
		}, []string{"route", "code"}),
	}
}
