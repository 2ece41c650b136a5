// Package services holds the trip collection, preference and health services
// the HTTP layer is built on.
package services

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Preference load outcomes, used as the "outcome" label.
const (
	outcomeFound   = "found"
	outcomeMissing = "missing"
	outcomeCorrupt = "corrupt"
	outcomeError   = "error"
	outcomeSaved   = "saved"
)

// serviceMetrics holds Prometheus metrics for the trip and preference services.
type serviceMetrics struct {
	tripsCreated    prometheus.Counter
	tripsRejected   *prometheus.CounterVec
	preferenceLoads *prometheus.CounterVec
	preferenceSaves *prometheus.CounterVec
	filteredTrips   prometheus.Histogram
}

// Singleton pattern for metrics (avoid double registration in tests).
var (
	metricsInstance *serviceMetrics
	metricsOnce     sync.Once
	metricsRegistry = prometheus.DefaultRegisterer
)

func newServiceMetrics() *serviceMetrics {
	metricsOnce.Do(func() {
		factory := promauto.With(metricsRegistry)
		metricsInstance = &serviceMetrics{
			tripsCreated: factory.NewCounter(prometheus.CounterOpts{
				Name: "timeline_trips_created_total",
				Help: "Total number of trips added through the add-trip form",
			}),
			tripsRejected: factory.NewCounterVec(prometheus.CounterOpts{
				Name: "timeline_trips_rejected_total",
				Help: "Total number of add-trip submissions that were rejected",
			}, []string{"reason"}),
			preferenceLoads: factory.NewCounterVec(prometheus.CounterOpts{
				Name: "timeline_preference_loads_total",
				Help: "Preference loads by outcome",
			}, []string{"outcome"}),
			preferenceSaves: factory.NewCounterVec(prometheus.CounterOpts{
				Name: "timeline_preference_saves_total",
				Help: "Preference saves by outcome",
			}, []string{"outcome"}),
			filteredTrips: factory.NewHistogram(prometheus.HistogramOpts{
				Name:    "timeline_filtered_trips",
				Help:    "Number of trips left on the timeline after filtering",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
			}),
		}
	})
	return metricsInstance
}

// resetServiceMetricsForTesting swaps in a fresh registry so tests can read
// counters from a clean slate.
func resetServiceMetricsForTesting() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	metricsRegistry = reg
	metricsInstance = nil
	metricsOnce = sync.Once{}
	return reg
}
