package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool keeps encode buffers around between responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "status", status, "error", err)
	}

	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Lookup messages
	ErrMsgEventNotFoundError  = "Event not found"
	ErrMsgTeamNotFoundError   = "Team not found"
	ErrMsgNodeNotFoundError   = "Node not found"
	ErrMsgRewardNotFoundError = "Inn reward not found"
	ErrMsgBuffNotFoundError   = "Buff not found"

	// Conflict messages
	ErrMsgTeamNameTakenError      = "A team with that name already exists in this event"
	ErrMsgMapNotGeneratedError    = "The map for this event has not been generated yet"
	ErrMsgEventNotEditableError   = "This event is completed and can no longer change"
	ErrMsgEventNotActiveError     = "This event has not started yet"
	ErrMsgNodeNotAvailableError   = "That node is not available to this team"
	ErrMsgNodeNotCompletedError   = "That node has not been completed by this team"
	ErrMsgBuffAlreadyAppliedError = "A buff is already applied to that node"
	ErrMsgAlreadyPurchasedError   = "This team already bought that inn reward"

	// Rule messages
	ErrMsgBuffNotApplicableError = "That buff cannot be used on this objective"
	ErrMsgInsufficientKeysError  = "Not enough keys for that reward"
	ErrMsgInsufficientPotError   = "The pot cannot go below zero"
	ErrMsgNoObjectiveError       = "That node has no objective to reduce"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Configuration and content errors carry their own detail, which is safe to show.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	// 400: the request itself is wrong
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrMissingEventConfig),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidEventConfig),
		errors.Is(err, domain.ErrUnknownContent),
		errors.Is(err, domain.ErrUnknownBuffType):
		return http.StatusBadRequest, err.Error()

	// 404
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, ErrMsgEventNotFoundError
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound, ErrMsgTeamNotFoundError
	case errors.Is(err, domain.ErrNodeNotFound):
		return http.StatusNotFound, ErrMsgNodeNotFoundError
	case errors.Is(err, domain.ErrRewardNotFound):
		return http.StatusNotFound, ErrMsgRewardNotFoundError
	case errors.Is(err, domain.ErrBuffNotFound):
		return http.StatusNotFound, ErrMsgBuffNotFoundError

	// 409: valid request, wrong state
	case errors.Is(err, domain.ErrTeamNameTaken):
		return http.StatusConflict, ErrMsgTeamNameTakenError
	case errors.Is(err, domain.ErrMapNotGenerated):
		return http.StatusConflict, ErrMsgMapNotGeneratedError
	case errors.Is(err, domain.ErrEventNotEditable):
		return http.StatusConflict, ErrMsgEventNotEditableError
	case errors.Is(err, domain.ErrEventNotActive):
		return http.StatusConflict, ErrMsgEventNotActiveError
	case errors.Is(err, domain.ErrNodeNotAvailable):
		return http.StatusConflict, ErrMsgNodeNotAvailableError
	case errors.Is(err, domain.ErrNodeNotCompleted):
		return http.StatusConflict, ErrMsgNodeNotCompletedError
	case errors.Is(err, domain.ErrBuffAlreadyApplied):
		return http.StatusConflict, ErrMsgBuffAlreadyAppliedError
	case errors.Is(err, domain.ErrRewardAlreadyPurchased):
		return http.StatusConflict, ErrMsgAlreadyPurchasedError

	// 422: a game rule refuses the action
	case errors.Is(err, domain.ErrBuffNotApplicable):
		return http.StatusUnprocessableEntity, ErrMsgBuffNotApplicableError
	case errors.Is(err, domain.ErrInsufficientKeys):
		return http.StatusUnprocessableEntity, ErrMsgInsufficientKeysError
	case errors.Is(err, domain.ErrInsufficientPot):
		return http.StatusUnprocessableEntity, ErrMsgInsufficientPotError
	case errors.Is(err, domain.ErrNoObjectiveOnNode):
		return http.StatusUnprocessableEntity, ErrMsgNoObjectiveError
	case errors.Is(err, domain.ErrNoObjectiveAvailable):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Integrity and storage failures never leak detail
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
