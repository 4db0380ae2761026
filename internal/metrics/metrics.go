// Package metrics defines Prometheus metrics for tradepost.
// All metrics are registered with the default registry via promauto and
// exposed at /metrics by the HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tradepost"

// HTTP server metrics, populated by the metrics middleware.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method, path, and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, path, and status.",
		},
		[]string{"method", "path", "status"},
	)
)

// Listing workflow metrics.
var (
	ItemsListedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_listed_total",
			Help:      "Items successfully listed for sale.",
		},
	)

	ListingFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listing_failures_total",
			Help:      "Failed listing attempts by reason.",
		},
		[]string{"reason"},
	)
)

// Inventory gauges, refreshed on a schedule by the stats collector.
var (
	ItemsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items_total",
			Help:      "Current number of items in the store.",
		},
	)

	ItemsByCategory = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items_by_category",
			Help:      "Current number of items per category.",
		},
		[]string{"category"},
	)

	AuthTokensActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "auth_tokens_active",
			Help:      "Auth tokens whose expiry is in the future.",
		},
	)
)

// Health gauges, flipped by the health endpoints.
var (
	HealthzUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "healthz_up",
			Help:      "1 when the process is serving, 0 otherwise.",
		},
	)

	ReadyzUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "readyz_up",
			Help:      "1 when the datastore is reachable, 0 otherwise.",
		},
	)
)
