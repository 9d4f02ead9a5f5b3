package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Bootstrap outcomes.
const (
	OutcomeLoaded    = "loaded"
	OutcomeDefaulted = "defaulted"
	OutcomeFailed    = "failed"
)

// Metrics holds the Prometheus metrics for configuration bootstrap.
type Metrics struct {
	BootstrapTotal    *prometheus.CounterVec
	BootstrapDuration prometheus.Histogram
}

// New registers the metrics with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		BootstrapTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carto_config_bootstrap_total",
				Help: "Total number of configuration bootstraps.",
			},
			[]string{"outcome"}, // loaded, defaulted, failed
		),
		BootstrapDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "carto_config_bootstrap_duration_seconds",
				Help:    "Duration of configuration bootstrap.",
				Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5},
			},
		),
	}
}

func (m *Metrics) IncBootstrap(outcome string) {
	m.BootstrapTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveBootstrap(seconds float64) {
	m.BootstrapDuration.Observe(seconds)
}
