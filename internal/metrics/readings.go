package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameRequests         = "requests_total"
	NameReturnedReadings = "returned_readings"
	NameQueryDuration    = "query_duration_seconds"
	LabelItem            = "item"
	LabelStatus          = "status"
)

const (
	StatusSuccess     = "success"
	StatusInvalidItem = "invalid_item"
	StatusFailure     = "failure"
)

var Requests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameRequests,
		Help:      "Total readings requests",
		Namespace: Namespace,
	},
	[]string{LabelItem, LabelStatus},
)

var ReturnedReadings = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      NameReturnedReadings,
		Help:      "Number of readings returned per request",
		Namespace: Namespace,
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	},
	[]string{LabelItem},
)

var QueryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name:      NameQueryDuration,
		Help:      "Duration of store range queries",
		Namespace: Namespace,
		Buckets:   prometheus.DefBuckets,
	},
)

var RateLimited = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      "rate_limited_requests_total",
		Help:      "Total requests rejected by the rate limiter",
		Namespace: Namespace,
	},
)
