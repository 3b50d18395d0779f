package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Catalog metric names
const (
	MetricNameCatalogItems       = "catalog_items"
	MetricNameCatalogModules     = "catalog_hideout_modules"
	MetricNameSearchesTotal      = "searches_total"
	MetricNameSearchResultSize   = "search_result_size"
	MetricNameSearchCacheLookups = "search_cache_lookups_total"
)

// Shopping list metric names
const (
	MetricNameShoppingListMutations = "shopping_list_mutations_total"
	MetricNameShoppingListSize      = "shopping_list_size"
)

// SSE metric names
const (
	MetricNameSSEClients       = "sse_clients"
	MetricNameSSEEventsDropped = "sse_events_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Catalog metric help text
const (
	HelpTextCatalogItems       = "Number of items in the loaded catalog"
	HelpTextCatalogModules     = "Number of hideout modules in the loaded catalog"
	HelpTextSearchesTotal      = "Total number of catalog searches by query mode"
	HelpTextSearchResultSize   = "Number of items returned per search"
	HelpTextSearchCacheLookups = "Search result cache lookups by outcome"
)

// Shopping list metric help text
const (
	HelpTextShoppingListMutations = "Total number of shopping list mutations by action"
	HelpTextShoppingListSize      = "Current number of entries on the shopping list"
)

// SSE metric help text
const (
	HelpTextSSEClients       = "Current number of connected SSE clients"
	HelpTextSSEEventsDropped = "Events not delivered to an SSE client, by event type"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelMode   = "mode"
	LabelResult = "result"
	LabelAction = "action"
)

// Cache lookup outcomes
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Path label used when a request matched no route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Buckets
// ============================================================================

var (
	// HTTPLatencyBuckets covers 1ms to 5s
	HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

	// ResultSizeBuckets covers empty results up to a full catalog listing
	ResultSizeBuckets = []float64{0, 1, 5, 10, 25, 50, 100, 250, 500}
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
