package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eoszmq",
		Subsystem: "chain_client",
		Name:      "requests_total",
		Help:      "Count of chain API calls.",
	}, []string{"operation", "status"})

	chainRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "eoszmq",
		Subsystem: "chain_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of chain API calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// ChainClient tracks metrics for nodeos chain API calls.
type ChainClient struct{}

// NewChainClient constructs a ChainClient observer.
func NewChainClient() *ChainClient {
	return &ChainClient{}
}

// Observe records one chain API call outcome and duration.
func (m ChainClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	chainRequestsTotal.WithLabelValues(operation, status).Inc()
	chainRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
