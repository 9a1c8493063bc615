// Package metrics provides prometheus observers for the sidecar.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	streamerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eoszmq",
		Subsystem: "streamer",
		Name:      "blocks_total",
		Help:      "Count of accepted-block callbacks processed.",
	}, []string{"status"})

	streamerBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "eoszmq",
		Subsystem: "streamer",
		Name:      "block_duration_seconds",
		Help:      "Duration of processing one accepted block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	streamerBlockTransactions = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "eoszmq",
		Subsystem: "streamer",
		Name:      "block_transactions",
		Help:      "Number of transactions per accepted block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})

	streamerSendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eoszmq",
		Subsystem: "streamer",
		Name:      "sends_total",
		Help:      "Count of messages pushed to subscribers.",
	}, []string{"message_type", "status"})

	streamerSendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "eoszmq",
		Subsystem: "streamer",
		Name:      "send_duration_seconds",
		Help:      "Duration of one socket send, including backpressure blocking.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"message_type", "status"})

	streamerMissingTracesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eoszmq",
		Subsystem: "streamer",
		Name:      "missing_traces_total",
		Help:      "Count of executed transactions whose trace was absent from the cache.",
	})

	streamerForksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "eoszmq",
		Subsystem: "streamer",
		Name:      "forks_total",
		Help:      "Count of fork events emitted.",
	})
)

// Streamer tracks metrics for the event stream pipeline.
type Streamer struct{}

// NewStreamer constructs a Streamer observer.
func NewStreamer() *Streamer {
	return &Streamer{}
}

// ObserveBlock records the outcome of one accepted-block callback.
func (m Streamer) ObserveBlock(err error, txCount int, started time.Time) {
	status := statusLabel(err)
	streamerBlocksTotal.WithLabelValues(status).Inc()
	streamerBlockDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	streamerBlockTransactions.Observe(float64(txCount))
}

// ObserveSend records one message push.
func (m Streamer) ObserveSend(msgType string, err error, started time.Time) {
	status := statusLabel(err)
	streamerSendsTotal.WithLabelValues(msgType, status).Inc()
	streamerSendDuration.WithLabelValues(msgType, status).Observe(time.Since(started).Seconds())
}

// ObserveMissingTrace records a cache miss for an executed transaction.
func (m Streamer) ObserveMissingTrace() {
	streamerMissingTracesTotal.Inc()
}

// ObserveFork records an emitted fork event.
func (m Streamer) ObserveFork() {
	streamerForksTotal.Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
