package domain

// MapGeneratedPayload is published after a map is (re)generated.
type MapGeneratedPayload struct {
	EventID    string `json:"event_id"`
	EventName  string `json:"event_name"`
	MapVersion int    `json:"map_version"`
	TotalNodes int    `json:"total_nodes"`
	NumInns    int    `json:"num_inns"`
	TeamsReset int    `json:"teams_reset"`
	Timestamp  int64  `json:"timestamp"`
}

// NodeProgressPayload is published for node completion and reversal.
type NodeProgressPayload struct {
	EventID     string      `json:"event_id"`
	TeamID      string      `json:"team_id"`
	TeamName    string      `json:"team_name"`
	NodeID      string      `json:"node_id"`
	NodeType    NodeType    `json:"node_type"`
	MapLocation string      `json:"map_location"`
	GP          GP          `json:"gp"`
	Keys        []KeyAmount `json:"keys,omitempty"`
	BuffsGained []BuffType  `json:"buffs_gained,omitempty"`
	Unlocked    []string    `json:"unlocked,omitempty"`
	CurrentPot  GP          `json:"current_pot"`
	Timestamp   int64       `json:"timestamp"`
}

type BuffAppliedPayload struct {
	EventID          string   `json:"event_id"`
	TeamID           string   `json:"team_id"`
	TeamName         string   `json:"team_name"`
	NodeID           string   `json:"node_id"`
	BuffType         BuffType `json:"buff_type"`
	OriginalQuantity int      `json:"original_quantity"`
	ReducedQuantity  int      `json:"reduced_quantity"`
	Timestamp        int64    `json:"timestamp"`
}

type InnPurchasePayload struct {
	EventID    string      `json:"event_id"`
	TeamID     string      `json:"team_id"`
	TeamName   string      `json:"team_name"`
	NodeID     string      `json:"node_id"`
	RewardID   string      `json:"reward_id"`
	RewardName string      `json:"reward_name"`
	KeysSpent  []KeyAmount `json:"keys_spent"`
	Payout     GP          `json:"payout"`
	CurrentPot GP          `json:"current_pot"`
	Timestamp  int64       `json:"timestamp"`
}

// TeamAdjustedPayload records an administrative override.
type TeamAdjustedPayload struct {
	EventID   string `json:"event_id"`
	TeamID    string `json:"team_id"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
	Timestamp int64  `json:"timestamp"`
}

// EventClosedPayload carries the final standings of a closed event.
type EventClosedPayload struct {
	EventID   string             `json:"event_id"`
	EventName string             `json:"event_name"`
	Reason    string             `json:"reason"`
	Standings []LeaderboardEntry `json:"standings"`
	Timestamp int64              `json:"timestamp"`
}
