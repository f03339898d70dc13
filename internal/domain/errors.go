package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgMissingEventConfig = "event configuration is incomplete"
	ErrMsgInvalidDateRange   = "invalid event date range"
	ErrMsgInvalidEventConfig = "invalid event configuration"

	// Content errors
	ErrMsgNoObjectiveAvailable = "no objective available"
	ErrMsgUnknownContent       = "unknown content id"

	// Integrity errors
	ErrMsgDuplicateNodeID = "duplicate node id"
	ErrMsgInvalidMap      = "map failed validation"

	// Progression errors
	ErrMsgNodeNotAvailable       = "node is not available"
	ErrMsgNodeNotCompleted       = "node is not completed"
	ErrMsgNoObjectiveOnNode      = "node has no objective"
	ErrMsgBuffNotApplicable      = "buff cannot be applied to this objective"
	ErrMsgBuffNotFound           = "buff not found"
	ErrMsgBuffAlreadyApplied     = "a buff is already applied to this node"
	ErrMsgInsufficientKeys       = "insufficient keys"
	ErrMsgRewardNotFound         = "inn reward not found"
	ErrMsgRewardAlreadyPurchased = "inn reward already purchased"
	ErrMsgUnknownBuffType        = "unknown buff type"
	ErrMsgInsufficientPot        = "pot cannot go below zero"

	// Lookup errors
	ErrMsgEventNotFound    = "event not found"
	ErrMsgTeamNotFound     = "team not found"
	ErrMsgNodeNotFound     = "node not found"
	ErrMsgMapNotGenerated  = "map has not been generated"
	ErrMsgEventNotEditable = "event is not editable"
	ErrMsgEventNotActive   = "event is not active"
	ErrMsgTeamNameTaken    = "team name already taken in this event"

	// Storage errors
	ErrMsgTxClosed = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrMissingEventConfig = errors.New(ErrMsgMissingEventConfig)
	ErrInvalidDateRange   = errors.New(ErrMsgInvalidDateRange)
	ErrInvalidEventConfig = errors.New(ErrMsgInvalidEventConfig)

	ErrNoObjectiveAvailable = errors.New(ErrMsgNoObjectiveAvailable)
	ErrUnknownContent       = errors.New(ErrMsgUnknownContent)

	ErrDuplicateNodeID = errors.New(ErrMsgDuplicateNodeID)
	ErrInvalidMap      = errors.New(ErrMsgInvalidMap)

	ErrNodeNotAvailable       = errors.New(ErrMsgNodeNotAvailable)
	ErrNodeNotCompleted       = errors.New(ErrMsgNodeNotCompleted)
	ErrNoObjectiveOnNode      = errors.New(ErrMsgNoObjectiveOnNode)
	ErrBuffNotApplicable      = errors.New(ErrMsgBuffNotApplicable)
	ErrBuffNotFound           = errors.New(ErrMsgBuffNotFound)
	ErrBuffAlreadyApplied     = errors.New(ErrMsgBuffAlreadyApplied)
	ErrInsufficientKeys       = errors.New(ErrMsgInsufficientKeys)
	ErrRewardNotFound         = errors.New(ErrMsgRewardNotFound)
	ErrRewardAlreadyPurchased = errors.New(ErrMsgRewardAlreadyPurchased)
	ErrUnknownBuffType        = errors.New(ErrMsgUnknownBuffType)
	ErrInsufficientPot        = errors.New(ErrMsgInsufficientPot)

	ErrEventNotFound    = errors.New(ErrMsgEventNotFound)
	ErrTeamNotFound     = errors.New(ErrMsgTeamNotFound)
	ErrNodeNotFound     = errors.New(ErrMsgNodeNotFound)
	ErrMapNotGenerated  = errors.New(ErrMsgMapNotGenerated)
	ErrEventNotEditable = errors.New(ErrMsgEventNotEditable)
	ErrEventNotActive   = errors.New(ErrMsgEventNotActive)
	ErrTeamNameTaken    = errors.New(ErrMsgTeamNameTaken)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// NoObjectiveAvailableError reports which difficulty bucket ran dry so an
// admin can re-enable content. It matches ErrNoObjectiveAvailable with errors.Is.
type NoObjectiveAvailableError struct {
	Difficulty ContentDifficulty
}

func (e *NoObjectiveAvailableError) Error() string {
	return fmt.Sprintf("%s for difficulty %q: enable more content", ErrMsgNoObjectiveAvailable, e.Difficulty)
}

func (e *NoObjectiveAvailableError) Unwrap() error {
	return ErrNoObjectiveAvailable
}
