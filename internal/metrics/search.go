package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search outcome labels.
const (
	OutcomeMatched    = "matched"
	OutcomeNoMatch    = "no_match"
	OutcomeFallback   = "fallback"
	OutcomeEmptyQuery = "empty_query"
	OutcomeError      = "error"
)

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "katalog",
			Name:      "search_requests_total",
			Help:      "Total number of catalog search requests by outcome",
		},
		[]string{"outcome"},
	)
)

// RegisterSearchMetrics registers search metrics with the default registry.
func RegisterSearchMetrics() {
	prometheus.MustRegister(SearchRequestsTotal)
}

// ObserveSearch records one search request outcome.
func ObserveSearch(outcome string) {
	SearchRequestsTotal.WithLabelValues(outcome).Inc()
}
