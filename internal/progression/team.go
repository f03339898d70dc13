package progression

import (
	"maps"
	"slices"

	"github.com/osse101/GielinorRush_Go/internal/domain"
)

// CloneTeam deep-copies every mutable field of t.
func CloneTeam(t *domain.Team) *domain.Team {
	c := *t
	c.Members = slices.Clone(t.Members)
	c.CompletedNodes = slices.Clone(t.CompletedNodes)
	c.AvailableNodes = slices.Clone(t.AvailableNodes)
	c.KeysHeld = slices.Clone(t.KeysHeld)
	c.BuffHistory = slices.Clone(t.BuffHistory)

	c.ActiveBuffs = make([]domain.Buff, len(t.ActiveBuffs))
	for i, b := range t.ActiveBuffs {
		b.ObjectiveTypes = slices.Clone(b.ObjectiveTypes)
		c.ActiveBuffs[i] = b
	}

	c.InnTransactions = make([]domain.InnTransaction, len(t.InnTransactions))
	for i, tx := range t.InnTransactions {
		tx.KeysSpent = slices.Clone(tx.KeysSpent)
		c.InnTransactions[i] = tx
	}

	if t.AppliedBuffs != nil {
		c.AppliedBuffs = maps.Clone(t.AppliedBuffs)
	}
	return &c
}

// NewTeamState returns the empty progress of a team on a fresh map.
func NewTeamState(teamID, eventID, name, startNodeID string) *domain.Team {
	t := &domain.Team{TeamID: teamID, EventID: eventID, Name: name}
	resetProgress(t, startNodeID)
	return t
}

func resetProgress(t *domain.Team, startNodeID string) {
	t.CompletedNodes = []string{}
	t.AvailableNodes = []string{}
	if startNodeID != "" {
		t.AvailableNodes = []string{startNodeID}
	}
	t.CurrentPot = domain.GP{}
	t.KeysHeld = []domain.KeyAmount{}
	t.ActiveBuffs = []domain.Buff{}
	t.BuffHistory = []domain.BuffHistoryEntry{}
	t.InnTransactions = []domain.InnTransaction{}
	t.AppliedBuffs = nil
}

func addKeys(held []domain.KeyAmount, add []domain.KeyAmount) []domain.KeyAmount {
	for _, k := range add {
		if k.Quantity <= 0 {
			continue
		}
		found := false
		for i := range held {
			if held[i].Color == k.Color {
				held[i].Quantity += k.Quantity
				found = true
				break
			}
		}
		if !found {
			held = append(held, k)
		}
	}
	return held
}

// removeKeys decrements held by sub, flooring at zero.
func removeKeys(held []domain.KeyAmount, sub []domain.KeyAmount) []domain.KeyAmount {
	for _, k := range sub {
		for i := range held {
			if held[i].Color == k.Color {
				held[i].Quantity = max(held[i].Quantity-k.Quantity, 0)
				break
			}
		}
	}
	return pruneKeys(held)
}

func pruneKeys(held []domain.KeyAmount) []domain.KeyAmount {
	out := held[:0]
	for _, k := range held {
		if k.Quantity > 0 {
			out = append(out, k)
		}
	}
	return out
}

// spendKeys pays cost out of held. Specific colors are charged first, then
// "any" costs drain the remaining keys in holding order.
func spendKeys(held []domain.KeyAmount, cost []domain.KeyAmount) (remaining, spent []domain.KeyAmount, ok bool) {
	remaining = slices.Clone(held)

	for _, c := range cost {
		if c.Color == domain.KeyAny {
			continue
		}
		i := slices.IndexFunc(remaining, func(k domain.KeyAmount) bool { return k.Color == c.Color })
		if i < 0 || remaining[i].Quantity < c.Quantity {
			return nil, nil, false
		}
		remaining[i].Quantity -= c.Quantity
		spent = addKeys(spent, []domain.KeyAmount{{Color: c.Color, Quantity: c.Quantity}})
	}

	for _, c := range cost {
		if c.Color != domain.KeyAny {
			continue
		}
		need := c.Quantity
		for i := range remaining {
			if need == 0 {
				break
			}
			take := min(remaining[i].Quantity, need)
			if take == 0 {
				continue
			}
			remaining[i].Quantity -= take
			need -= take
			spent = addKeys(spent, []domain.KeyAmount{{Color: remaining[i].Color, Quantity: take}})
		}
		if need > 0 {
			return nil, nil, false
		}
	}

	return pruneKeys(remaining), spent, true
}

func removeString(list []string, v string) []string {
	return slices.DeleteFunc(list, func(s string) bool { return s == v })
}
