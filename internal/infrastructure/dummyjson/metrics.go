package dummyjson

import "github.com/prometheus/client_golang/prometheus"

var upstreamRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "The total number of requests issued to the upstream provider",
	},
	[]string{"op", "status"},
)

func init() {
	prometheus.MustRegister(upstreamRequests)
}
