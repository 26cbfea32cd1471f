package external

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// sourceCache labels fetches answered from the daily cache.
const sourceCache = "cache"

type metrics struct {
	fetches *prometheus.CounterVec
}

func newMetrics() *metrics {
	return &metrics{
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "luna",
				Subsystem: "external",
				Name:      "fetch_total",
				Help:      "Provider fetches by provider and where the value came from (live, fallback, cache)",
			},
			[]string{"provider", "source"},
		),
	}
}

// register attaches the counter to reg. When an identical counter is already
// registered, as happens when several clients share a registry, that one is reused.
func (m *metrics) register(reg prometheus.Registerer) error {
	if err := reg.Register(m.fetches); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				m.fetches = existing
				return nil
			}
		}
		return err
	}
	return nil
}

func (m *metrics) observe(provider, source string) {
	m.fetches.WithLabelValues(provider, source).Inc()
}
