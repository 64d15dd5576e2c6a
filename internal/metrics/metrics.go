// Package metrics registers the search core's Prometheus collectors
// against a private registry rather than the global default, keeping the
// core embeddable without surprise global state.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the search core's collectors.
type Registry struct {
	SearchDuration *prometheus.HistogramVec
	SearchRequests *prometheus.CounterVec
	IndexDocuments *prometheus.GaugeVec

	registry *prometheus.Registry
}

// New builds a Registry with its own private prometheus.Registry.
func New() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.SearchDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_duration_seconds",
			Help:    "Search request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"ordering"},
	)

	r.SearchRequests = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of search requests, labeled by outcome.",
		},
		[]string{"outcome"},
	)

	r.IndexDocuments = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "index_documents",
			Help: "Number of documents indexed in a field collection's most recent rebuild.",
		},
		[]string{"field_collection"},
	)

	return r
}

// Gatherer exposes the private registry for /metrics mounting.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// ObserveSearch records one search call's duration and outcome.
func (r *Registry) ObserveSearch(ordering, outcome string, seconds float64) {
	r.SearchDuration.WithLabelValues(ordering).Observe(seconds)
	r.SearchRequests.WithLabelValues(outcome).Inc()
}

// SetIndexDocuments records a field collection's document count after a
// rebuild.
func (r *Registry) SetIndexDocuments(fieldCollection string, count int) {
	r.IndexDocuments.WithLabelValues(fieldCollection).Set(float64(count))
}
