package progression

import (
	"fmt"

	"github.com/osse101/GielinorRush_Go/internal/domain"
)

// GrantBuff gives a team a fresh buff outside of node rewards.
func (e *Engine) GrantBuff(team *domain.Team, buffType domain.BuffType) (*domain.Team, *Outcome, error) {
	b, err := e.newBuff(buffType)
	if err != nil {
		return nil, nil, err
	}

	next := CloneTeam(team)
	next.ActiveBuffs = append(next.ActiveBuffs, *b)
	next.UpdatedAt = e.now()
	return next, &Outcome{BuffsGained: []domain.Buff{*b}}, nil
}

// AdjustPot adds delta, which may be negative, to the team's pot.
func (e *Engine) AdjustPot(team *domain.Team, delta domain.GP) (*domain.Team, *Outcome, error) {
	result := team.CurrentPot.Add(delta)
	if result.Sign() < 0 {
		return nil, nil, fmt.Errorf("%w: pot %s, adjustment %s", domain.ErrInsufficientPot, team.CurrentPot, delta)
	}

	next := CloneTeam(team)
	next.CurrentPot = result
	next.UpdatedAt = e.now()
	return next, &Outcome{GPDelta: delta}, nil
}

// AdjustKeys adds delta keys of one color. The count cannot go below zero.
func (e *Engine) AdjustKeys(team *domain.Team, color domain.KeyColor, delta int) (*domain.Team, *Outcome, error) {
	switch color {
	case domain.KeyRed, domain.KeyBlue, domain.KeyGreen:
	default:
		return nil, nil, fmt.Errorf("%w: key color %q", domain.ErrInvalidInput, color)
	}
	if team.KeyCount(color)+delta < 0 {
		return nil, nil, fmt.Errorf("%w: holding %d %s", domain.ErrInsufficientKeys, team.KeyCount(color), color)
	}

	next := CloneTeam(team)
	out := &Outcome{}
	if delta >= 0 {
		next.KeysHeld = addKeys(next.KeysHeld, []domain.KeyAmount{{Color: color, Quantity: delta}})
		out.KeysGained = []domain.KeyAmount{{Color: color, Quantity: delta}}
	} else {
		next.KeysHeld = removeKeys(next.KeysHeld, []domain.KeyAmount{{Color: color, Quantity: -delta}})
		out.KeysLost = []domain.KeyAmount{{Color: color, Quantity: -delta}}
	}
	next.UpdatedAt = e.now()
	return next, out, nil
}

// ResetTeam wipes all progress, leaving only the start node available.
func (e *Engine) ResetTeam(team *domain.Team, startNodeID string) *domain.Team {
	next := CloneTeam(team)
	resetProgress(next, startNodeID)
	next.UpdatedAt = e.now()
	return next
}
