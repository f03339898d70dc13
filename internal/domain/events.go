package domain

// Event types published on the bus. They follow <entity>.<action>.
const (
	EventTypeMapGenerated    = "treasure.map_generated"
	EventTypeNodeCompleted   = "treasure.node_completed"
	EventTypeNodeUncompleted = "treasure.node_uncompleted"
	EventTypeBuffApplied     = "treasure.buff_applied"
	EventTypeInnPurchase     = "treasure.inn_purchase"
	EventTypeTeamAdjusted    = "treasure.team_adjusted"
	EventTypeEventClosed     = "treasure.event_closed"
)

// Reasons an event was closed
const (
	CloseReasonAdmin   = "admin"
	CloseReasonExpired = "expired"
)
