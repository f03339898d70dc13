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

// Treasure metric names
const (
	MetricNameMapsGenerated         = "treasure_maps_generated_total"
	MetricNameMapGenerationDuration = "treasure_map_generation_duration_seconds"
	MetricNameMapGenerationFailures = "treasure_map_generation_failures_total"
	MetricNameNodesCompleted        = "treasure_nodes_completed_total"
	MetricNameNodesUncompleted      = "treasure_nodes_uncompleted_total"
	MetricNameBuffsApplied          = "treasure_buffs_applied_total"
	MetricNameInnPurchases          = "treasure_inn_purchases_total"
	MetricNameGPAwarded             = "treasure_gp_awarded_total"
	MetricNameGraphCacheLookups     = "treasure_graph_cache_lookups_total"
	MetricNameEventsClosed          = "treasure_events_closed_total"
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
	HelpTextEventsPublished    = "Total number of events published by type"
	HelpTextEventHandlerErrors = "Total number of event handler errors by type"
)

// Treasure metric help text
const (
	HelpTextMapsGenerated         = "Total number of treasure maps generated"
	HelpTextMapGenerationDuration = "Time spent generating a treasure map"
	HelpTextMapGenerationFailures = "Map generation attempts rejected by reason"
	HelpTextNodesCompleted        = "Total number of nodes completed by node type"
	HelpTextNodesUncompleted      = "Total number of node completions reversed by node type"
	HelpTextBuffsApplied          = "Total number of buffs applied by buff type"
	HelpTextInnPurchases          = "Total number of inn rewards purchased"
	HelpTextGPAwarded             = "GP added to team pots by source"
	HelpTextGraphCacheLookups     = "Node graph cache lookups by result"
	HelpTextEventsClosed          = "Treasure events closed by reason"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelNodeType = "node_type"
	LabelBuffType = "buff_type"
	LabelSource   = "source"
	LabelResult   = "result"
	LabelReason   = "reason"
)

// Label values
const (
	SourceNode = "node"
	SourceInn  = "inn"

	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultStale = "stale"

	// PathUnmatched labels requests that no route matched
	PathUnmatched = "unmatched"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// GenerationBuckets cover map generation, which is CPU bound and fast
var GenerationBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1}

// Log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected shape"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
