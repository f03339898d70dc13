package handler

import (
	"net/http"
	"time"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/logger"
	"github.com/osse101/GielinorRush_Go/internal/treasure"
)

// CreateEventRequest is the body of POST /events
type CreateEventRequest struct {
	Name              string                    `json:"name" validate:"required,max=100"`
	PrizePoolTotal    domain.GP                 `json:"prize_pool_total" validate:"gp_positive"`
	NumTeams          int                       `json:"num_teams" validate:"required,min=1,max=100"`
	PlayersPerTeam    int                       `json:"players_per_team" validate:"required,min=1,max=50"`
	NodeToInnRatio    int                       `json:"node_to_inn_ratio,omitempty" validate:"omitempty,min=1,max=100"`
	RewardSplitRatio  float64                   `json:"reward_split_ratio,omitempty" validate:"omitempty,gt=0,lte=1"`
	Difficulty        domain.Difficulty         `json:"difficulty,omitempty" validate:"omitempty,oneof=easy normal hard sweatlord"`
	DurationDays      int                       `json:"duration_days,omitempty" validate:"omitempty,min=1,max=365"`
	StartDate         *time.Time                `json:"start_date,omitempty"`
	EndDate           *time.Time                `json:"end_date,omitempty"`
	ContentSelections *domain.ContentSelections `json:"content_selections,omitempty"`
}

func (r CreateEventRequest) toService() treasure.CreateEventRequest {
	return treasure.CreateEventRequest{
		Name: r.Name,
		Config: domain.EventConfig{
			PrizePoolTotal:   r.PrizePoolTotal,
			NumTeams:         r.NumTeams,
			PlayersPerTeam:   r.PlayersPerTeam,
			NodeToInnRatio:   r.NodeToInnRatio,
			RewardSplitRatio: r.RewardSplitRatio,
			Difficulty:       r.Difficulty,
			DurationDays:     r.DurationDays,
			StartDate:        r.StartDate,
			EndDate:          r.EndDate,
		},
		ContentSelections: r.ContentSelections,
	}
}

// GenerateMapRequest is the optional body of POST /events/{eventID}/map/generate
type GenerateMapRequest struct {
	Seed              *int64                    `json:"seed,omitempty"`
	ContentSelections *domain.ContentSelections `json:"content_selections,omitempty"`
}

// TreasureHandler serves event and map routes
type TreasureHandler struct {
	svc treasure.Service
}

// NewTreasureHandler creates a new TreasureHandler
func NewTreasureHandler(svc treasure.Service) *TreasureHandler {
	return &TreasureHandler{svc: svc}
}

// HandleCreateEvent creates an event and sizes it
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event configuration"
// @Success 201 {object} domain.TreasureEvent
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/events [post]
func (h *TreasureHandler) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpCreateEvent); err != nil {
		return
	}

	evt, err := h.svc.CreateEvent(r.Context(), req.toService())
	if err != nil {
		respondServiceError(w, r, OpCreateEvent, err)
		return
	}

	respondJSON(w, http.StatusCreated, evt)
}

// HandleGetEvent returns an event
// @Summary Get event
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} domain.TreasureEvent
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/events/{eventID} [get]
func (h *TreasureHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetPathParam(r, w, ParamEventID)
	if !ok {
		return
	}

	evt, err := h.svc.GetEvent(r.Context(), eventID)
	if err != nil {
		respondServiceError(w, r, OpGetEvent, err)
		return
	}

	respondJSON(w, http.StatusOK, evt)
}

// HandleGenerateMap (re)generates the event map and resets every team
// @Summary Generate map
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param request body GenerateMapRequest false "Seed and content overrides"
// @Success 201 {object} treasure.GenerateResult
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/events/{eventID}/map/generate [post]
func (h *TreasureHandler) HandleGenerateMap(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetPathParam(r, w, ParamEventID)
	if !ok {
		return
	}

	var req GenerateMapRequest
	if err := DecodeOptionalRequest(r, w, &req, OpGenerateMap); err != nil {
		return
	}

	res, err := h.svc.GenerateMap(r.Context(), eventID, treasure.GenerateOptions{
		Seed:              req.Seed,
		ContentSelections: req.ContentSelections,
	})
	if err != nil {
		respondServiceError(w, r, OpGenerateMap, err)
		return
	}

	logger.FromContext(r.Context()).Info("Map generated via API",
		"event_id", eventID, "map_version", res.Event.MapVersion, "nodes", len(res.Map.Nodes))
	respondJSON(w, http.StatusCreated, res)
}

// HandleGetMap returns the current map
// @Summary Get map
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} domain.GeneratedMap
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/events/{eventID}/map [get]
func (h *TreasureHandler) HandleGetMap(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetPathParam(r, w, ParamEventID)
	if !ok {
		return
	}

	m, err := h.svc.GetMap(r.Context(), eventID)
	if err != nil {
		respondServiceError(w, r, OpGetMap, err)
		return
	}

	respondJSON(w, http.StatusOK, m)
}

// HandleCloseEvent ends an active event and returns its final standings
// @Summary Close event
// @Tags admin
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} treasure.CloseResult
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/events/{eventID}/close [post]
func (h *TreasureHandler) HandleCloseEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetPathParam(r, w, ParamEventID)
	if !ok {
		return
	}

	res, err := h.svc.CloseEvent(r.Context(), eventID)
	if err != nil {
		respondServiceError(w, r, OpCloseEvent, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

// HandleLeaderboard ranks the event's teams
// @Summary Leaderboard
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {array} domain.LeaderboardEntry
// @Router /api/v1/events/{eventID}/leaderboard [get]
func (h *TreasureHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetPathParam(r, w, ParamEventID)
	if !ok {
		return
	}

	board, err := h.svc.Leaderboard(r.Context(), eventID)
	if err != nil {
		respondServiceError(w, r, OpLeaderboard, err)
		return
	}

	respondJSON(w, http.StatusOK, board)
}
