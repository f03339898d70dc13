package treasure

import "time"

// Cache defaults used when Options leaves them zero
const (
	DefaultGraphCacheSize = 64
	DefaultGraphCacheTTL  = 10 * time.Minute
)

// Validation limits
const (
	MaxEventNameLength = 100
	MaxTeamNameLength  = 50
	MaxTeamMembers     = 50
)

// Lock key prefixes for the LockManager
const (
	lockPrefixEvent = "treasure:event:"
	lockPrefixTeam  = "treasure:team:"
)

// Admin action names recorded on team adjusted events
const (
	AdminActionGrantBuff  = "grant_buff"
	AdminActionAdjustPot  = "adjust_pot"
	AdminActionAdjustKeys = "adjust_keys"
)

// Map generation failure reasons, used as metric labels
const (
	FailureReasonConfig  = "config"
	FailureReasonContent = "content"
	FailureReasonInvalid = "invalid_map"
	FailureReasonStorage = "storage"
)

// Log messages
const (
	LogMsgEventCreated         = "Treasure event created"
	LogMsgMapGenerated         = "Treasure map generated"
	LogMsgMapGenerationFailed  = "Treasure map generation failed"
	LogMsgTeamCreated          = "Treasure team created"
	LogMsgNodeCompleted        = "Node completed"
	LogMsgNodeUncompleted      = "Node uncompleted"
	LogMsgBuffApplied          = "Buff applied to node"
	LogMsgInnRewardPurchased   = "Inn reward purchased"
	LogMsgTeamAdjusted         = "Team adjusted by admin"
	LogMsgTransitionRejected   = "Team transition rejected"
	LogMsgGraphLoaded          = "Node graph loaded from storage"
	LogMsgFailedToLoadGraph    = "Failed to load node graph"
	LogMsgFailedToCommit       = "Failed to commit treasure transaction"
	LogMsgFailedToUpdateTeam   = "Failed to update team"
	LogMsgFailedToReplaceNodes = "Failed to replace nodes"
	LogMsgEventClosed          = "Treasure event closed"
	LogMsgFailedToCloseEvent   = "Failed to close treasure event"
)

// Error messages
const (
	ErrMsgFailedToBeginTx     = "failed to begin transaction"
	ErrMsgFailedToCommitTx    = "failed to commit transaction"
	ErrMsgFailedToLoadGraph   = "failed to load node graph"
	ErrMsgFailedToSaveEvent   = "failed to save event"
	ErrMsgFailedToSaveTeam    = "failed to save team"
	ErrMsgFailedToSaveNodes   = "failed to save nodes"
	ErrMsgFailedToLoadTeams   = "failed to load teams"
	ErrMsgFailedToListExpired = "failed to list expired events"
	ErrMsgFailedToGenerate    = "failed to generate map"
	ErrMsgNameRequired        = "name is required"
	ErrMsgNameTooLong         = "name is too long"
	ErrMsgTooManyMembers      = "too many team members"
	ErrMsgEventCompleted      = "event is completed"
	ErrMsgEventIsDraft        = "event map has not been generated"
	ErrMsgGPDeltaZero         = "adjustment must not be zero"
	ErrMsgKeyDeltaZero        = "key adjustment must not be zero"
)
