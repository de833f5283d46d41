package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hedge_records_created_total",
		Help: "Records persisted, by collection",
	}, []string{"collection"})

	CreateFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hedge_create_failures_total",
		Help: "Failed creates, by collection and reason",
	}, []string{"collection", "reason"})

	DegradedLists = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hedge_degraded_lists_total",
		Help: "List calls answered with an empty result because the store was unavailable",
	}, []string{"collection"})

	IdempotentReplays = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hedge_idempotent_replays_total",
		Help: "Creates answered from the idempotency cache",
	}, []string{"collection"})

	StoreUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hedge_store_up",
		Help: "1 when the last store probe succeeded",
	})

	HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hedge_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
