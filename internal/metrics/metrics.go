// Package metrics exposes dictionary lookups and request timings to prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	statLookups  = "wordtrie_lookups_total"
	statWords    = "wordtrie_words"
	statRequests = "wordtrie_request_duration_seconds"
)

// Dictionary operations.
const (
	OpContains = "contains"
	OpPrefix   = "prefix"
	OpAdd      = "add"
)

const (
	resultHit  = "hit"
	resultMiss = "miss"
	resultOK   = "ok"
)

// Metrics owns a registry and the collectors registered on it. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	lookups  *prometheus.CounterVec
	words    prometheus.Gauge
	requests *prometheus.HistogramVec
}

// New creates a Metrics with its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: statLookups,
				Help: "Dictionary operations by operation and result.",
			}, []string{"op", "result"}),
		words: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: statWords,
				Help: "Distinct words stored in the dictionary.",
			}),
		requests: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    statRequests,
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			}, []string{"route"}),
	}

	m.registry.MustRegister(
		m.lookups,
		m.words,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveLookup counts one lookup of the given operation.
func (m *Metrics) ObserveLookup(op string, found bool) {
	if m == nil {
		return
	}
	result := resultMiss
	if found {
		result = resultHit
	}
	m.lookups.WithLabelValues(op, result).Inc()
}

// ObserveAdd counts n submitted words under op="add".
func (m *Metrics) ObserveAdd(n int) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(OpAdd, resultOK).Add(float64(n))
}

// SetWords records the current dictionary size.
func (m *Metrics) SetWords(n int) {
	if m == nil {
		return
	}
	m.words.Set(float64(n))
}

// ObserveRequest records how long a request to route took.
func (m *Metrics) ObserveRequest(route string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route).Observe(d.Seconds())
}

// Handler serves the registry in the prometheus exposition format. A nil
// *Metrics serves 404.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
