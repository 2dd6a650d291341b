package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	QuantityAdjustments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuantityAdjustments,
			Help: HelpTextQuantityAdjustments,
		},
		[]string{LabelCounter},
	)

	BulkItemsApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBulkItemsApplied,
			Help: HelpTextBulkItemsApplied,
		},
	)

	WishlistMoves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWishlistMoves,
			Help: HelpTextWishlistMoves,
		},
		[]string{LabelUseProxy},
	)

	PricePointsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePricePointsRecorded,
			Help: HelpTextPricePointsRecorded,
		},
	)

	CardSearches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCardSearches,
			Help: HelpTextCardSearches,
		},
	)

	PrintingCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePrintingCacheHits,
			Help: HelpTextPrintingCacheHits,
		},
	)

	PrintingCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePrintingCacheMisses,
			Help: HelpTextPrintingCacheMisses,
		},
	)
)
