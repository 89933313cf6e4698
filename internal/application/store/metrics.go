package store

import "github.com/prometheus/client_golang/prometheus"

var (
	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_hits_total",
			Help: "Query requests served from the cache without a network call",
		},
		[]string{"store", "op"},
	)

	cacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_misses_total",
			Help: "Query requests that required an upstream fetch",
		},
		[]string{"store", "op"},
	)

	staleSettlements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_stale_settlements_total",
			Help: "Settlements discarded because a newer request was dispatched",
		},
		[]string{"store", "op"},
	)
)

func init() {
	prometheus.MustRegister(cacheHits)
	prometheus.MustRegister(cacheMisses)
	prometheus.MustRegister(staleSettlements)
}
