package progression

import (
	"fmt"
	"slices"
	"time"

	"github.com/osse101/GielinorRush_Go/internal/buff"
	"github.com/osse101/GielinorRush_Go/internal/domain"
)

// BuffFactory instantiates a buff of the given type.
type BuffFactory func(domain.BuffType) (*domain.Buff, error)

// Engine applies progression transitions. It holds no team state.
type Engine struct {
	now     func() time.Time
	newBuff BuffFactory
}

// NewEngine creates an engine. Nil arguments fall back to time.Now and
// buff.CreateBuff.
func NewEngine(now func() time.Time, newBuff BuffFactory) *Engine {
	if now == nil {
		now = time.Now
	}
	if newBuff == nil {
		newBuff = buff.CreateBuff
	}
	return &Engine{now: now, newBuff: newBuff}
}

// Outcome summarises what a transition changed.
type Outcome struct {
	NodeID       string                   `json:"node_id,omitempty"`
	GPDelta      domain.GP                `json:"gp_delta"`
	KeysGained   []domain.KeyAmount       `json:"keys_gained,omitempty"`
	KeysLost     []domain.KeyAmount       `json:"keys_lost,omitempty"`
	BuffsGained  []domain.Buff            `json:"buffs_gained,omitempty"`
	BuffsRemoved []string                 `json:"buffs_removed,omitempty"`
	Unlocked     []string                 `json:"unlocked,omitempty"`
	Locked       []string                 `json:"locked,omitempty"`
	History      *domain.BuffHistoryEntry `json:"history,omitempty"`
	Transaction  *domain.InnTransaction   `json:"transaction,omitempty"`
}

// CompleteNode marks an available node completed and pays out its rewards.
func (e *Engine) CompleteNode(team *domain.Team, g *Graph, nodeID string) (*domain.Team, *Outcome, error) {
	if !slices.Contains(team.AvailableNodes, nodeID) || slices.Contains(team.CompletedNodes, nodeID) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNodeNotAvailable, nodeID)
	}
	node, ok := g.Node(nodeID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, nodeID)
	}

	next := CloneTeam(team)
	out := &Outcome{NodeID: nodeID}

	next.AvailableNodes = removeString(next.AvailableNodes, nodeID)
	next.CompletedNodes = append(next.CompletedNodes, nodeID)

	for _, u := range node.Unlocks {
		if slices.Contains(next.AvailableNodes, u) || slices.Contains(next.CompletedNodes, u) {
			continue
		}
		next.AvailableNodes = append(next.AvailableNodes, u)
		out.Unlocked = append(out.Unlocked, u)
	}

	if r := node.Rewards; r != nil {
		next.CurrentPot = next.CurrentPot.Add(r.GP)
		out.GPDelta = r.GP
		next.KeysHeld = addKeys(next.KeysHeld, r.Keys)
		out.KeysGained = slices.Clone(r.Keys)

		for _, br := range r.Buffs {
			b, err := e.newBuff(br.BuffType)
			if err != nil {
				return nil, nil, fmt.Errorf("granting buff from node %s: %w", nodeID, err)
			}
			b.SourceNodeID = nodeID
			next.ActiveBuffs = append(next.ActiveBuffs, *b)
			out.BuffsGained = append(out.BuffsGained, *b)
		}
	}

	next.UpdatedAt = e.now()
	return next, out, nil
}

// UncompleteNode reverses CompleteNode. GP and keys are floored at zero,
// unlocked nodes stay available when another completed node also unlocks
// them, and only buffs from this grant that are still untouched are revoked.
func (e *Engine) UncompleteNode(team *domain.Team, g *Graph, nodeID string) (*domain.Team, *Outcome, error) {
	if !slices.Contains(team.CompletedNodes, nodeID) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNodeNotCompleted, nodeID)
	}
	node, ok := g.Node(nodeID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, nodeID)
	}

	next := CloneTeam(team)
	out := &Outcome{NodeID: nodeID}

	next.CompletedNodes = removeString(next.CompletedNodes, nodeID)
	if !slices.Contains(next.AvailableNodes, nodeID) {
		next.AvailableNodes = append(next.AvailableNodes, nodeID)
	}

	for _, u := range node.Unlocks {
		if u == nodeID || slices.Contains(next.CompletedNodes, u) {
			continue
		}
		if stillUnlocked(g, next.CompletedNodes, u) {
			continue
		}
		if slices.Contains(next.AvailableNodes, u) {
			next.AvailableNodes = removeString(next.AvailableNodes, u)
			out.Locked = append(out.Locked, u)
		}
	}

	if r := node.Rewards; r != nil {
		before := next.CurrentPot
		next.CurrentPot = next.CurrentPot.SubFloor(r.GP)
		out.GPDelta = next.CurrentPot.Sub(before)

		for _, k := range r.Keys {
			lost := min(next.KeyCount(k.Color), k.Quantity)
			if lost > 0 {
				out.KeysLost = append(out.KeysLost, domain.KeyAmount{Color: k.Color, Quantity: lost})
			}
		}
		next.KeysHeld = removeKeys(next.KeysHeld, r.Keys)

		for _, br := range r.Buffs {
			if i := revocableBuff(next.ActiveBuffs, br.BuffType, nodeID); i >= 0 {
				out.BuffsRemoved = append(out.BuffsRemoved, next.ActiveBuffs[i].BuffID)
				next.ActiveBuffs = slices.Delete(next.ActiveBuffs, i, i+1)
			}
		}
	}

	next.UpdatedAt = e.now()
	return next, out, nil
}

func stillUnlocked(g *Graph, completed []string, id string) bool {
	for _, src := range g.UnlockedBy(id) {
		if slices.Contains(completed, src) {
			return true
		}
	}
	return false
}

// revocableBuff finds a full-charge buff of type t, preferring one granted by nodeID.
func revocableBuff(buffs []domain.Buff, t domain.BuffType, nodeID string) int {
	fallback := -1
	for i, b := range buffs {
		if b.BuffType != t || b.UsesRemaining != b.MaxUses {
			continue
		}
		if b.SourceNodeID == nodeID {
			return i
		}
		if fallback < 0 {
			fallback = i
		}
	}
	return fallback
}

// ApplyBuffToNode spends one use of a buff to reduce an available node's
// objective for this team only. The shared node is never modified.
func (e *Engine) ApplyBuffToNode(team *domain.Team, g *Graph, buffID, nodeID string) (*domain.Team, *Outcome, error) {
	if !slices.Contains(team.AvailableNodes, nodeID) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNodeNotAvailable, nodeID)
	}
	node, ok := g.Node(nodeID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, nodeID)
	}
	if node.Objective == nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNoObjectiveOnNode, nodeID)
	}

	bi := slices.IndexFunc(team.ActiveBuffs, func(b domain.Buff) bool { return b.BuffID == buffID })
	if bi < 0 {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrBuffNotFound, buffID)
	}
	if _, applied := team.AppliedBuffs[nodeID]; applied {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrBuffAlreadyApplied, nodeID)
	}

	b := team.ActiveBuffs[bi]
	reduced, err := buff.ApplyBuffToObjective(node.Objective, &b)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s on %s", err, b.BuffType, node.Objective.Type)
	}

	next := CloneTeam(team)
	now := e.now()

	if next.AppliedBuffs == nil {
		next.AppliedBuffs = make(map[string]domain.NodeBuff)
	}
	next.AppliedBuffs[nodeID] = domain.NodeBuff{
		BuffID:           b.BuffID,
		BuffType:         b.BuffType,
		Reduction:        b.Reduction,
		OriginalQuantity: node.Objective.Quantity,
		ReducedQuantity:  reduced.Quantity,
		SavedAmount:      reduced.AppliedBuff.SavedAmount,
	}

	next.ActiveBuffs[bi].UsesRemaining--
	out := &Outcome{NodeID: nodeID}
	if next.ActiveBuffs[bi].UsesRemaining <= 0 {
		out.BuffsRemoved = []string{b.BuffID}
		next.ActiveBuffs = slices.Delete(next.ActiveBuffs, bi, bi+1)
	}

	entry := domain.BuffHistoryEntry{
		BuffID:           b.BuffID,
		BuffType:         b.BuffType,
		NodeID:           nodeID,
		OriginalQuantity: node.Objective.Quantity,
		ReducedQuantity:  reduced.Quantity,
		SavedAmount:      reduced.AppliedBuff.SavedAmount,
		Timestamp:        now,
	}
	next.BuffHistory = append(next.BuffHistory, entry)
	out.History = &entry

	next.UpdatedAt = now
	return next, out, nil
}

// EffectiveObjective merges a node's base objective with the team's buff
// overlay. It returns nil for nodes without an objective.
func EffectiveObjective(team *domain.Team, node *domain.Node) *domain.Objective {
	if node.Objective == nil {
		return nil
	}
	obj := *node.Objective
	nb, ok := team.AppliedBuffs[node.NodeID]
	if !ok {
		return &obj
	}
	original := nb.OriginalQuantity
	obj.Quantity = nb.ReducedQuantity
	obj.OriginalQuantity = &original
	obj.AppliedBuff = &domain.AppliedBuff{
		BuffID:      nb.BuffID,
		BuffType:    nb.BuffType,
		Reduction:   nb.Reduction,
		SavedAmount: nb.SavedAmount,
	}
	return &obj
}

// PurchaseInnReward trades keys for GP at an inn the team has reached.
// Each reward can be bought once per team.
func (e *Engine) PurchaseInnReward(team *domain.Team, g *Graph, rewardID string) (*domain.Team, *Outcome, error) {
	inn, reward, ok := g.FindInnReward(rewardID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrRewardNotFound, rewardID)
	}
	if !slices.Contains(team.AvailableNodes, inn.NodeID) && !slices.Contains(team.CompletedNodes, inn.NodeID) {
		return nil, nil, fmt.Errorf("%w: inn %s has not been reached", domain.ErrNodeNotAvailable, inn.NodeID)
	}
	for _, tx := range team.InnTransactions {
		if tx.RewardID == rewardID {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrRewardAlreadyPurchased, rewardID)
		}
	}

	remaining, spent, ok := spendKeys(team.KeysHeld, reward.KeyCost)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s costs %s", domain.ErrInsufficientKeys, reward.Name, describeKeys(reward.KeyCost))
	}

	next := CloneTeam(team)
	now := e.now()

	next.KeysHeld = remaining
	next.CurrentPot = next.CurrentPot.Add(reward.Payout)

	tx := domain.InnTransaction{
		RewardID:  rewardID,
		NodeID:    inn.NodeID,
		KeysSpent: spent,
		Payout:    reward.Payout,
		Timestamp: now,
	}
	next.InnTransactions = append(next.InnTransactions, tx)

	next.UpdatedAt = now
	return next, &Outcome{
		NodeID:      inn.NodeID,
		GPDelta:     reward.Payout,
		KeysLost:    spent,
		Transaction: &tx,
	}, nil
}

func describeKeys(keys []domain.KeyAmount) string {
	s := ""
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d %s", k.Quantity, k.Color)
	}
	return s
}
