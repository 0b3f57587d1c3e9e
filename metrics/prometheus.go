// Package metrics exports cache events as Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/prizzledev/simple-cacher/types"
)

var _ types.Metrics = (*Prometheus)(nil)

// Prometheus implements types.Metrics with one counter per event.
type Prometheus struct {
	Hits        prometheus.Counter
	Misses      prometheus.Counter
	Evictions   prometheus.Counter
	Expirations prometheus.Counter
}

// NewPrometheus registers the cache counters under namespace. A nil
// registerer means prometheus.DefaultRegisterer. Registering the same
// namespace twice on one registerer panics, as promauto does.
func NewPrometheus(namespace string, reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Prometheus{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of lookups that found a live entry",
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of lookups that found nothing live",
		}),
		Evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_evictions_total",
			Help:      "Total number of entries dropped to respect capacity",
		}),
		Expirations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_expirations_total",
			Help:      "Total number of expired entries removed",
		}),
	}
}

func (p *Prometheus) Hit()      { p.Hits.Inc() }
func (p *Prometheus) Miss()     { p.Misses.Inc() }
func (p *Prometheus) Eviction() { p.Evictions.Inc() }
func (p *Prometheus) Expire()   { p.Expirations.Inc() }
