package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a row references a missing parent
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeCheckViolation is raised when a CHECK constraint fails
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Event Operations
const (
	ErrMsgFailedToInsertEvent       = "failed to insert treasure event"
	ErrMsgFailedToGetEvent          = "failed to get treasure event"
	ErrMsgFailedToQueryEvents       = "failed to query treasure events"
	ErrMsgFailedToUpdateEvent       = "failed to update treasure event"
	ErrMsgFailedToMarshalEventData  = "failed to marshal treasure event data"
	ErrMsgFailedToUnmarshalEventRow = "failed to unmarshal treasure event row"
)

// Error Messages - Node Operations
const (
	ErrMsgFailedToQueryNodes    = "failed to query nodes"
	ErrMsgFailedToDeleteNodes   = "failed to delete nodes"
	ErrMsgFailedToInsertNode    = "failed to insert node"
	ErrMsgFailedToMarshalNode   = "failed to marshal node"
	ErrMsgFailedToUnmarshalNode = "failed to unmarshal node"
)

// Error Messages - Team Operations
const (
	ErrMsgFailedToInsertTeam        = "failed to insert team"
	ErrMsgFailedToGetTeam           = "failed to get team"
	ErrMsgFailedToQueryTeams        = "failed to query teams"
	ErrMsgFailedToUpdateTeam        = "failed to update team"
	ErrMsgFailedToMarshalProgress   = "failed to marshal team progress"
	ErrMsgFailedToUnmarshalProgress = "failed to unmarshal team progress"
	ErrMsgFailedToParsePot          = "failed to parse team pot"
)
