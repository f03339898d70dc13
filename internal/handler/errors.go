package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgMissingPathParam = "Missing %s path parameter"
)

// Operation names used in logs
const (
	OpCreateEvent    = "Create event"
	OpGetEvent       = "Get event"
	OpGenerateMap    = "Generate map"
	OpGetMap         = "Get map"
	OpCloseEvent     = "Close event"
	OpLeaderboard    = "Get leaderboard"
	OpCreateTeam     = "Create team"
	OpGetTeam        = "Get team"
	OpCompleteNode   = "Complete node"
	OpUncompleteNode = "Uncomplete node"
	OpApplyBuff      = "Apply buff"
	OpPurchaseReward = "Purchase inn reward"
	OpGrantBuff      = "Grant buff"
	OpAdjustPot      = "Adjust pot"
	OpAdjustKeys     = "Adjust keys"
)

// Path parameter names
const (
	ParamEventID = "eventID"
	ParamTeamID  = "teamID"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseDown   = "database connection failed"
)
