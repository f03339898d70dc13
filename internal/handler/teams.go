package handler

import (
	"context"
	"net/http"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/treasure"
)

// CreateTeamRequest is the body of POST /events/{eventID}/teams
type CreateTeamRequest struct {
	Name    string   `json:"name" validate:"required,max=50"`
	Members []string `json:"members,omitempty" validate:"max=50,dive,required,max=64"`
}

// NodeRequest targets one node
type NodeRequest struct {
	NodeID string `json:"node_id" validate:"required"`
}

// ApplyBuffRequest spends a held buff on an available node
type ApplyBuffRequest struct {
	BuffID string `json:"buff_id" validate:"required"`
	NodeID string `json:"node_id" validate:"required"`
}

// PurchaseRequest buys one inn reward
type PurchaseRequest struct {
	RewardID string `json:"reward_id" validate:"required"`
}

// GrantBuffRequest gives a team a buff outside node rewards
type GrantBuffRequest struct {
	BuffType domain.BuffType `json:"buff_type" validate:"required,buff_type"`
}

// AdjustPotRequest adds a signed GP amount to a team's pot
type AdjustPotRequest struct {
	Delta domain.GP `json:"delta" validate:"gp_nonzero"`
}

// AdjustKeysRequest adds or removes keys of one color
type AdjustKeysRequest struct {
	Color domain.KeyColor `json:"color" validate:"required,oneof=red blue green"`
	Delta int             `json:"delta" validate:"required,min=-1000,max=1000"`
}

// HandleCreateTeam registers a team
// @Summary Create team
// @Tags teams
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param request body CreateTeamRequest true "Team"
// @Success 201 {object} domain.Team
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/events/{eventID}/teams [post]
func (h *TreasureHandler) HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetPathParam(r, w, ParamEventID)
	if !ok {
		return
	}

	var req CreateTeamRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpCreateTeam); err != nil {
		return
	}

	team, err := h.svc.CreateTeam(r.Context(), eventID, treasure.CreateTeamRequest{Name: req.Name, Members: req.Members})
	if err != nil {
		respondServiceError(w, r, OpCreateTeam, err)
		return
	}

	respondJSON(w, http.StatusCreated, team)
}

// HandleGetTeam returns a team with its effective objectives
// @Summary Get team
// @Tags teams
// @Produce json
// @Param eventID path string true "Event ID"
// @Param teamID path string true "Team ID"
// @Success 200 {object} treasure.TeamView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/events/{eventID}/teams/{teamID} [get]
func (h *TreasureHandler) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	eventID, teamID, ok := eventAndTeam(r, w)
	if !ok {
		return
	}

	view, err := h.svc.GetTeam(r.Context(), eventID, teamID)
	if err != nil {
		respondServiceError(w, r, OpGetTeam, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// handleTransition decodes REQ, runs a team transition and writes its result
func handleTransition[REQ any](
	w http.ResponseWriter,
	r *http.Request,
	opName string,
	action func(ctx context.Context, eventID, teamID string, req REQ) (*treasure.TransitionResult, error),
) {
	eventID, teamID, ok := eventAndTeam(r, w)
	if !ok {
		return
	}

	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	res, err := action(r.Context(), eventID, teamID, req)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

// HandleCompleteNode marks a node completed for a team
// @Summary Complete node
// @Tags progression
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param teamID path string true "Team ID"
// @Param request body NodeRequest true "Node"
// @Success 200 {object} treasure.TransitionResult
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/events/{eventID}/teams/{teamID}/complete [post]
func (h *TreasureHandler) HandleCompleteNode(w http.ResponseWriter, r *http.Request) {
	handleTransition(w, r, OpCompleteNode, func(ctx context.Context, eventID, teamID string, req NodeRequest) (*treasure.TransitionResult, error) {
		return h.svc.CompleteNode(ctx, eventID, teamID, req.NodeID)
	})
}

// HandleUncompleteNode reverses a completion
// @Summary Uncomplete node
// @Tags progression
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param teamID path string true "Team ID"
// @Param request body NodeRequest true "Node"
// @Success 200 {object} treasure.TransitionResult
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/events/{eventID}/teams/{teamID}/uncomplete [post]
func (h *TreasureHandler) HandleUncompleteNode(w http.ResponseWriter, r *http.Request) {
	handleTransition(w, r, OpUncompleteNode, func(ctx context.Context, eventID, teamID string, req NodeRequest) (*treasure.TransitionResult, error) {
		return h.svc.UncompleteNode(ctx, eventID, teamID, req.NodeID)
	})
}

// HandleApplyBuff reduces a node objective for a team
// @Summary Apply buff
// @Tags progression
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param teamID path string true "Team ID"
// @Param request body ApplyBuffRequest true "Buff and node"
// @Success 200 {object} treasure.TransitionResult
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/events/{eventID}/teams/{teamID}/buffs/apply [post]
func (h *TreasureHandler) HandleApplyBuff(w http.ResponseWriter, r *http.Request) {
	handleTransition(w, r, OpApplyBuff, func(ctx context.Context, eventID, teamID string, req ApplyBuffRequest) (*treasure.TransitionResult, error) {
		return h.svc.ApplyBuff(ctx, eventID, teamID, req.BuffID, req.NodeID)
	})
}

// HandlePurchaseInnReward trades keys for GP
// @Summary Purchase inn reward
// @Tags progression
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param teamID path string true "Team ID"
// @Param request body PurchaseRequest true "Reward"
// @Success 200 {object} treasure.TransitionResult
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/events/{eventID}/teams/{teamID}/inn/purchase [post]
func (h *TreasureHandler) HandlePurchaseInnReward(w http.ResponseWriter, r *http.Request) {
	handleTransition(w, r, OpPurchaseReward, func(ctx context.Context, eventID, teamID string, req PurchaseRequest) (*treasure.TransitionResult, error) {
		return h.svc.PurchaseInnReward(ctx, eventID, teamID, req.RewardID)
	})
}

// HandleGrantBuff is an admin override
// @Summary Grant buff
// @Tags admin
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param teamID path string true "Team ID"
// @Param request body GrantBuffRequest true "Buff type"
// @Success 200 {object} treasure.TransitionResult
// @Router /api/v1/events/{eventID}/teams/{teamID}/admin/grant-buff [post]
func (h *TreasureHandler) HandleGrantBuff(w http.ResponseWriter, r *http.Request) {
	handleTransition(w, r, OpGrantBuff, func(ctx context.Context, eventID, teamID string, req GrantBuffRequest) (*treasure.TransitionResult, error) {
		return h.svc.GrantBuff(ctx, eventID, teamID, req.BuffType)
	})
}

// HandleAdjustPot is an admin override
// @Summary Adjust pot
// @Tags admin
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param teamID path string true "Team ID"
// @Param request body AdjustPotRequest true "Signed GP amount"
// @Success 200 {object} treasure.TransitionResult
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/events/{eventID}/teams/{teamID}/admin/adjust-pot [post]
func (h *TreasureHandler) HandleAdjustPot(w http.ResponseWriter, r *http.Request) {
	handleTransition(w, r, OpAdjustPot, func(ctx context.Context, eventID, teamID string, req AdjustPotRequest) (*treasure.TransitionResult, error) {
		return h.svc.AdjustPot(ctx, eventID, teamID, req.Delta)
	})
}

// HandleAdjustKeys is an admin override
// @Summary Adjust keys
// @Tags admin
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param teamID path string true "Team ID"
// @Param request body AdjustKeysRequest true "Key color and signed count"
// @Success 200 {object} treasure.TransitionResult
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/events/{eventID}/teams/{teamID}/admin/adjust-keys [post]
func (h *TreasureHandler) HandleAdjustKeys(w http.ResponseWriter, r *http.Request) {
	handleTransition(w, r, OpAdjustKeys, func(ctx context.Context, eventID, teamID string, req AdjustKeysRequest) (*treasure.TransitionResult, error) {
		return h.svc.AdjustKeys(ctx, eventID, teamID, req.Color, req.Delta)
	})
}
