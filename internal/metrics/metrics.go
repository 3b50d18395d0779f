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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Catalog Metrics
var (
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
	)

	CatalogModules = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogModules,
			Help: HelpTextCatalogModules,
		},
	)

	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSearchesTotal,
			Help: HelpTextSearchesTotal,
		},
		[]string{LabelMode},
	)

	SearchResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSearchResultSize,
			Help:    HelpTextSearchResultSize,
			Buckets: ResultSizeBuckets,
		},
	)

	SearchCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSearchCacheLookups,
			Help: HelpTextSearchCacheLookups,
		},
		[]string{LabelResult},
	)
)

// Shopping List Metrics
var (
	ShoppingListMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShoppingListMutations,
			Help: HelpTextShoppingListMutations,
		},
		[]string{LabelAction},
	)

	ShoppingListSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameShoppingListSize,
			Help: HelpTextShoppingListSize,
		},
	)
)

// SSE Metrics
var (
	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)

	SSEEventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSSEEventsDropped,
			Help: HelpTextSSEEventsDropped,
		},
		[]string{LabelType},
	)
)
