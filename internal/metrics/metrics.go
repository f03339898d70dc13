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

// Treasure Metrics
var (
	MapsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMapsGenerated,
			Help: HelpTextMapsGenerated,
		},
	)

	MapGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameMapGenerationDuration,
			Help:    HelpTextMapGenerationDuration,
			Buckets: GenerationBuckets,
		},
	)

	MapGenerationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMapGenerationFailures,
			Help: HelpTextMapGenerationFailures,
		},
		[]string{LabelReason},
	)

	NodesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNodesCompleted,
			Help: HelpTextNodesCompleted,
		},
		[]string{LabelNodeType},
	)

	NodesUncompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNodesUncompleted,
			Help: HelpTextNodesUncompleted,
		},
		[]string{LabelNodeType},
	)

	BuffsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuffsApplied,
			Help: HelpTextBuffsApplied,
		},
		[]string{LabelBuffType},
	)

	InnPurchases = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInnPurchases,
			Help: HelpTextInnPurchases,
		},
	)

	GPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGPAwarded,
			Help: HelpTextGPAwarded,
		},
		[]string{LabelSource},
	)

	GraphCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGraphCacheLookups,
			Help: HelpTextGraphCacheLookups,
		},
		[]string{LabelResult},
	)

	EventsClosed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsClosed,
			Help: HelpTextEventsClosed,
		},
		[]string{LabelReason},
	)
)
