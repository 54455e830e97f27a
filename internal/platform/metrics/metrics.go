// Package metrics exposes prometheus instrumentation for the analytics engine
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// FeedPages counts pages fetched from the remote feed, by endpoint
	FeedPages = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skypulse_feed_pages_total",
		Help: "Pages fetched from the remote feed",
	}, []string{"endpoint"})

	// FeedErrors counts failed feed calls by endpoint and error kind
	FeedErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skypulse_feed_errors_total",
		Help: "Failed feed calls",
	}, []string{"endpoint", "kind"})

	// RateLimited counts local limiter rejections
	RateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "skypulse_rate_limited_total",
		Help: "Requests rejected by the local rate limiter",
	})

	// RateBudget tracks admissions left in the current limiter window
	RateBudget = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "skypulse_rate_budget",
		Help: "Admissions remaining in the current rate limit window",
	})

	// Retries counts retry attempts by operation
	Retries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skypulse_retries_total",
		Help: "Retry attempts against the remote feed",
	}, []string{"op"})

	// CacheHits counts result cache hits by purpose and freshness
	CacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skypulse_cache_hits_total",
		Help: "Result cache hits",
	}, []string{"purpose", "freshness"})

	// CacheMisses counts result cache misses by purpose
	CacheMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skypulse_cache_misses_total",
		Help: "Result cache misses",
	}, []string{"purpose"})

	// CacheSize tracks stored result entries, fresh or stale
	CacheSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "skypulse_cache_entries",
		Help: "Entries held by the result cache",
	})

	// RunDuration observes aggregation run latency by purpose
	RunDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skypulse_run_duration_seconds",
		Help:    "Aggregation run duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"purpose"})
)

func init() {
	prometheus.MustRegister(FeedPages, FeedErrors, RateLimited, RateBudget, Retries, CacheHits, CacheMisses, CacheSize, RunDuration)
}

// Handler returns the /metrics scrape handler
func Handler() http.Handler { return promhttp.Handler() }

// ObserveRun records a run duration for purpose
func ObserveRun(purpose string, start time.Time) {
	RunDuration.WithLabelValues(purpose).Observe(time.Since(start).Seconds())
}
