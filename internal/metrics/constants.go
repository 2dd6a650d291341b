package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameQuantityAdjustments = "quantity_adjustments_total"
	MetricNameBulkItemsApplied    = "bulk_items_applied_total"
	MetricNameWishlistMoves       = "wishlist_moves_total"
	MetricNamePricePointsRecorded = "price_points_recorded_total"
	MetricNameCardSearches        = "card_searches_total"
	MetricNamePrintingCacheHits   = "printing_cache_hits_total"
	MetricNamePrintingCacheMisses = "printing_cache_misses_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextQuantityAdjustments = "Total number of collection counter adjustments"
	HelpTextBulkItemsApplied    = "Total number of items applied through bulk adjustments"
	HelpTextWishlistMoves       = "Total number of wishlist-to-collection moves"
	HelpTextPricePointsRecorded = "Total number of recorded price points"
	HelpTextCardSearches        = "Total number of catalog searches"
	HelpTextPrintingCacheHits   = "Total printing-existence cache hits"
	HelpTextPrintingCacheMisses = "Total printing-existence cache misses"
)

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCounter  = "counter"
	LabelUseProxy = "use_proxy"
)

// Values for the counter label.
const (
	CounterOwned  = "owned"
	CounterWanted = "wanted"
	CounterProxy  = "proxy"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
