// Package metrics defines the prometheus collectors shared across the
// application. Collectors are registered on the default registry via
// promauto and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Region cache metrics
var (
	// CacheLookups tracks cache resolutions by outcome (hit, stale, miss)
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "region_cache_lookups_total",
			Help: "Region cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	// RefreshDuration tracks how long a full cache refresh takes
	// (diary fetch, scoring, aggregation, stats, upsert)
	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "region_cache_refresh_duration_seconds",
			Help:    "Duration of region cache refreshes in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	// EmptyRefreshes counts refreshes that produced zero diary entries
	EmptyRefreshes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "region_cache_empty_refreshes_total",
			Help: "Cache refreshes that yielded no diary entries",
		},
	)
)

// Scraper metrics
var (
	// ScrapeRequests tracks upstream fetch attempts by result (ok, error, empty)
	ScrapeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scraper_requests_total",
			Help: "Upstream diary fetch attempts by result",
		},
		[]string{"result"},
	)

	// ScrapeDuration tracks upstream request latency in seconds
	ScrapeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scraper_request_duration_seconds",
			Help:    "Upstream diary fetch duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	// ScrapeFallbacks counts calls served from mock generation
	ScrapeFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scraper_mock_fallbacks_total",
			Help: "Diary fetches served by mock generation",
		},
	)

	// BreakerStateChanges tracks scraper circuit breaker transitions
	BreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_changes_total",
			Help: "Circuit breaker state transitions by component and new state",
		},
		[]string{"component", "state"},
	)
)

// Database metrics
var (
	// DBQueryDuration tracks query latency by simplified query name
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query"},
	)

	// DBErrorsTotal tracks failed queries by simplified query name
	DBErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Database errors by query",
		},
		[]string{"query"},
	)
)
