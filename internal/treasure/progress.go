package treasure

import (
	"context"
	"fmt"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/event"
	"github.com/osse101/GielinorRush_Go/internal/logger"
	"github.com/osse101/GielinorRush_Go/internal/progression"
	"github.com/osse101/GielinorRush_Go/internal/repository"
)

// transitionFunc computes a team's next state against the event graph
type transitionFunc func(team *domain.Team, g *progression.Graph) (*domain.Team, *progression.Outcome, error)

// transition loads the event and team under lock, applies fn, and stores the
// result. Regeneration is excluded by the event read lock and the shared row
// lock; actions on the same team are serialized by the team mutex and the
// team row lock.
func (s *service) transition(ctx context.Context, eventID, teamID string, fn transitionFunc) (*domain.TreasureEvent, *domain.Team, *progression.Outcome, error) {
	rw := s.locks.GetRWLock(lockPrefixEvent + eventID)
	rw.RLock()
	defer rw.RUnlock()

	mu := s.locks.GetLock(lockPrefixTeam + teamID)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	evt, err := tx.GetEventForShare(ctx, eventID)
	if err != nil {
		return nil, nil, nil, err
	}
	if evt.MapVersion == 0 {
		return nil, nil, nil, fmt.Errorf("%w: %s", domain.ErrMapNotGenerated, eventID)
	}
	if evt.Status == domain.EventStatusCompleted {
		return nil, nil, nil, fmt.Errorf("%w: %s", domain.ErrEventNotEditable, ErrMsgEventCompleted)
	}

	g, err := s.graph(ctx, evt)
	if err != nil {
		return nil, nil, nil, err
	}

	team, err := tx.GetTeamForUpdate(ctx, eventID, teamID)
	if err != nil {
		return nil, nil, nil, err
	}

	next, out, err := fn(team, g)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgTransitionRejected, "event_id", eventID, "team_id", teamID, "error", err)
		return nil, nil, nil, err
	}

	if err := tx.UpdateTeam(ctx, next); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveTeam, err)
	}
	if err := tx.Commit(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgFailedToCommit, "event_id", eventID, "team_id", teamID, "error", err)
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}
	return evt, next, out, nil
}

func (s *service) CompleteNode(ctx context.Context, eventID, teamID, nodeID string) (*TransitionResult, error) {
	var node domain.Node
	_, team, out, err := s.transition(ctx, eventID, teamID, func(t *domain.Team, g *progression.Graph) (*domain.Team, *progression.Outcome, error) {
		if n, ok := g.Node(nodeID); ok {
			node = *n
		}
		return s.engine.CompleteNode(t, g, nodeID)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgNodeCompleted,
		"event_id", eventID, "team_id", teamID, "node_id", nodeID, "gp", out.GPDelta.String(), "unlocked", len(out.Unlocked))

	s.publisher.PublishWithRetry(ctx, event.NewNodeProgressEvent(event.NodeCompleted, s.progressPayload(team, &node, out)))
	return &TransitionResult{Team: team, Outcome: out}, nil
}

func (s *service) UncompleteNode(ctx context.Context, eventID, teamID, nodeID string) (*TransitionResult, error) {
	var node domain.Node
	_, team, out, err := s.transition(ctx, eventID, teamID, func(t *domain.Team, g *progression.Graph) (*domain.Team, *progression.Outcome, error) {
		if n, ok := g.Node(nodeID); ok {
			node = *n
		}
		return s.engine.UncompleteNode(t, g, nodeID)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgNodeUncompleted,
		"event_id", eventID, "team_id", teamID, "node_id", nodeID, "locked", len(out.Locked))

	s.publisher.PublishWithRetry(ctx, event.NewNodeProgressEvent(event.NodeUncompleted, s.progressPayload(team, &node, out)))
	return &TransitionResult{Team: team, Outcome: out}, nil
}

func (s *service) ApplyBuff(ctx context.Context, eventID, teamID, buffID, nodeID string) (*TransitionResult, error) {
	_, team, out, err := s.transition(ctx, eventID, teamID, func(t *domain.Team, g *progression.Graph) (*domain.Team, *progression.Outcome, error) {
		return s.engine.ApplyBuffToNode(t, g, buffID, nodeID)
	})
	if err != nil {
		return nil, err
	}

	h := out.History
	logger.FromContext(ctx).Info(LogMsgBuffApplied,
		"event_id", eventID, "team_id", teamID, "node_id", nodeID, "buff_type", h.BuffType,
		"original", h.OriginalQuantity, "reduced", h.ReducedQuantity)

	s.publisher.PublishWithRetry(ctx, event.NewBuffAppliedEvent(domain.BuffAppliedPayload{
		EventID:          eventID,
		TeamID:           teamID,
		TeamName:         team.Name,
		NodeID:           nodeID,
		BuffType:         h.BuffType,
		OriginalQuantity: h.OriginalQuantity,
		ReducedQuantity:  h.ReducedQuantity,
		Timestamp:        h.Timestamp.Unix(),
	}))
	return &TransitionResult{Team: team, Outcome: out}, nil
}

func (s *service) PurchaseInnReward(ctx context.Context, eventID, teamID, rewardID string) (*TransitionResult, error) {
	var rewardName string
	_, team, out, err := s.transition(ctx, eventID, teamID, func(t *domain.Team, g *progression.Graph) (*domain.Team, *progression.Outcome, error) {
		if _, r, ok := g.FindInnReward(rewardID); ok {
			rewardName = r.Name
		}
		return s.engine.PurchaseInnReward(t, g, rewardID)
	})
	if err != nil {
		return nil, err
	}

	tx := out.Transaction
	logger.FromContext(ctx).Info(LogMsgInnRewardPurchased,
		"event_id", eventID, "team_id", teamID, "reward_id", rewardID, "payout", tx.Payout.String())

	s.publisher.PublishWithRetry(ctx, event.NewInnPurchaseEvent(domain.InnPurchasePayload{
		EventID:    eventID,
		TeamID:     teamID,
		TeamName:   team.Name,
		NodeID:     tx.NodeID,
		RewardID:   rewardID,
		RewardName: rewardName,
		KeysSpent:  tx.KeysSpent,
		Payout:     tx.Payout,
		CurrentPot: team.CurrentPot,
		Timestamp:  tx.Timestamp.Unix(),
	}))
	return &TransitionResult{Team: team, Outcome: out}, nil
}

func (s *service) GrantBuff(ctx context.Context, eventID, teamID string, buffType domain.BuffType) (*TransitionResult, error) {
	_, team, out, err := s.transition(ctx, eventID, teamID, func(t *domain.Team, _ *progression.Graph) (*domain.Team, *progression.Outcome, error) {
		return s.engine.GrantBuff(t, buffType)
	})
	if err != nil {
		return nil, err
	}

	s.announceAdjustment(ctx, team, AdminActionGrantBuff, string(buffType))
	return &TransitionResult{Team: team, Outcome: out}, nil
}

func (s *service) AdjustPot(ctx context.Context, eventID, teamID string, delta domain.GP) (*TransitionResult, error) {
	if delta.IsZero() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgGPDeltaZero)
	}

	_, team, out, err := s.transition(ctx, eventID, teamID, func(t *domain.Team, _ *progression.Graph) (*domain.Team, *progression.Outcome, error) {
		return s.engine.AdjustPot(t, delta)
	})
	if err != nil {
		return nil, err
	}

	s.announceAdjustment(ctx, team, AdminActionAdjustPot, delta.String())
	return &TransitionResult{Team: team, Outcome: out}, nil
}

func (s *service) AdjustKeys(ctx context.Context, eventID, teamID string, color domain.KeyColor, delta int) (*TransitionResult, error) {
	if delta == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgKeyDeltaZero)
	}

	_, team, out, err := s.transition(ctx, eventID, teamID, func(t *domain.Team, _ *progression.Graph) (*domain.Team, *progression.Outcome, error) {
		return s.engine.AdjustKeys(t, color, delta)
	})
	if err != nil {
		return nil, err
	}

	s.announceAdjustment(ctx, team, AdminActionAdjustKeys, fmt.Sprintf("%+d %s", delta, color))
	return &TransitionResult{Team: team, Outcome: out}, nil
}

func (s *service) announceAdjustment(ctx context.Context, team *domain.Team, action, detail string) {
	logger.FromContext(ctx).Info(LogMsgTeamAdjusted,
		"event_id", team.EventID, "team_id", team.TeamID, "action", action, "detail", detail)

	s.publisher.PublishWithRetry(ctx, event.NewTeamAdjustedEvent(domain.TeamAdjustedPayload{
		EventID:   team.EventID,
		TeamID:    team.TeamID,
		Action:    action,
		Detail:    detail,
		Timestamp: team.UpdatedAt.Unix(),
	}))
}

func (s *service) progressPayload(team *domain.Team, node *domain.Node, out *progression.Outcome) domain.NodeProgressPayload {
	p := domain.NodeProgressPayload{
		EventID:     team.EventID,
		TeamID:      team.TeamID,
		TeamName:    team.Name,
		NodeID:      out.NodeID,
		NodeType:    node.NodeType,
		MapLocation: node.MapLocation,
		GP:          out.GPDelta,
		Unlocked:    out.Unlocked,
		CurrentPot:  team.CurrentPot,
		Timestamp:   team.UpdatedAt.Unix(),
	}
	if len(out.KeysGained) > 0 {
		p.Keys = out.KeysGained
	} else {
		p.Keys = out.KeysLost
	}
	for _, b := range out.BuffsGained {
		p.BuffsGained = append(p.BuffsGained, b.BuffType)
	}
	return p
}
