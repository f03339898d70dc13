package domain

import "time"

// Buff is a consumable reduction held by a team.
type Buff struct {
	BuffID         string          `json:"buff_id"`
	BuffType       BuffType        `json:"buff_type"`
	BuffName       string          `json:"buff_name"`
	Reduction      float64         `json:"reduction"`
	ObjectiveTypes []ObjectiveType `json:"objective_types"`
	UsesRemaining  int             `json:"uses_remaining"`
	MaxUses        int             `json:"max_uses"`
	SourceNodeID   string          `json:"source_node_id,omitempty"`
}

type BuffHistoryEntry struct {
	BuffID           string    `json:"buff_id"`
	BuffType         BuffType  `json:"buff_type"`
	NodeID           string    `json:"node_id"`
	OriginalQuantity int       `json:"original_quantity"`
	ReducedQuantity  int       `json:"reduced_quantity"`
	SavedAmount      int       `json:"saved_amount"`
	Timestamp        time.Time `json:"timestamp"`
}

type InnTransaction struct {
	RewardID  string      `json:"reward_id"`
	NodeID    string      `json:"node_id"`
	KeysSpent []KeyAmount `json:"keys_spent"`
	Payout    GP          `json:"payout"`
	Timestamp time.Time   `json:"timestamp"`
}

// NodeBuff is a team's private reduction of one node's objective.
type NodeBuff struct {
	BuffID           string   `json:"buff_id"`
	BuffType         BuffType `json:"buff_type"`
	Reduction        float64  `json:"reduction"`
	OriginalQuantity int      `json:"original_quantity"`
	ReducedQuantity  int      `json:"reduced_quantity"`
	SavedAmount      int      `json:"saved_amount"`
}

// Team is one team's progress through an event's map.
type Team struct {
	TeamID          string              `json:"team_id"`
	EventID         string              `json:"event_id"`
	Name            string              `json:"name"`
	Members         []string            `json:"members,omitempty"`
	CompletedNodes  []string            `json:"completed_nodes"`
	AvailableNodes  []string            `json:"available_nodes"`
	CurrentPot      GP                  `json:"current_pot"`
	KeysHeld        []KeyAmount         `json:"keys_held"`
	ActiveBuffs     []Buff              `json:"active_buffs"`
	BuffHistory     []BuffHistoryEntry  `json:"buff_history"`
	InnTransactions []InnTransaction    `json:"inn_transactions"`
	AppliedBuffs    map[string]NodeBuff `json:"applied_buffs,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// KeyCount returns how many keys of color the team holds.
func (t *Team) KeyCount(color KeyColor) int {
	for _, k := range t.KeysHeld {
		if k.Color == color {
			return k.Quantity
		}
	}
	return 0
}

// TotalKeys sums keys across every color.
func (t *Team) TotalKeys() int {
	total := 0
	for _, k := range t.KeysHeld {
		total += k.Quantity
	}
	return total
}

// LeaderboardEntry ranks a team within an event.
type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	TeamID         string `json:"team_id"`
	Name           string `json:"name"`
	CurrentPot     GP     `json:"current_pot"`
	CompletedCount int    `json:"completed_count"`
	TotalKeys      int    `json:"total_keys"`
}
