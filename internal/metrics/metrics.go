// Package metrics defines Prometheus metrics for listing-valuator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lv"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the service reports healthy (1) or not (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the service reports ready (1) or not (0).",
	})
)

// Valuation metrics.
var (
	EstimatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimates_total",
		Help:      "Total number of price estimates by confidence level.",
	}, []string{"confidence"})

	EstimateFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimate_failures_total",
		Help:      "Total number of price estimates that could not be produced.",
	})

	EstimateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "estimate_duration_seconds",
		Help:      "Duration of price estimates in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ComparableDepth = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "comparable_depth",
		Help:      "Search depth reached by comparable searches.",
		Buckets:   prometheus.LinearBuckets(1, 1, 6), // 1, 2, ..., 6
	})

	ComparablesFound = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "comparables_found",
		Help:      "Number of comparables returned per search.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1, 2, 4, ..., 128
	})
)

// Recommendation metrics.
var (
	RecommendationsServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendations_served_total",
		Help:      "Total number of recommendation requests by cache result.",
	}, []string{"cache"})

	RecommendationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "recommendation_duration_seconds",
		Help:      "Duration of uncached recommendation builds in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	RecommendationScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "recommendation_score",
		Help:      "Distribution of recommendation scores.",
		Buckets:   prometheus.LinearBuckets(0, 0.1, 11), // 0, 0.1, ..., 1.0
	})

	SignalLookupFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signal_lookup_failures_total",
		Help:      "Total number of per-user signal lookups that failed and defaulted to zero.",
	}, []string{"signal"})

	CacheErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_errors_total",
		Help:      "Total number of recommendation cache errors.",
	}, []string{"op"})
)

// Scheduler metrics.
var (
	WarmRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "warm_runs_total",
		Help:      "Total number of recommendation cache warm runs.",
	})

	WarmUsersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "warm_users_total",
		Help:      "Total number of users whose recommendations were precomputed.",
	})

	WarmLastSuccessTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "warm_last_success_timestamp",
		Help:      "Unix timestamp of the last successful warm run.",
	})
)

// Geocoder metrics.
var (
	GeocodeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_requests_total",
		Help:      "Total number of geocoder requests by outcome.",
	}, []string{"outcome"})
)
