package domain

import "time"

// Difficulty is the overall event difficulty chosen by the organiser.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyNormal    Difficulty = "normal"
	DifficultyHard      Difficulty = "hard"
	DifficultySweatlord Difficulty = "sweatlord"
)

// ContentDifficulty is the bucket an objective is drawn from.
type ContentDifficulty string

const (
	ContentEasy   ContentDifficulty = "easy"
	ContentMedium ContentDifficulty = "medium"
	ContentHard   ContentDifficulty = "hard"
)

type NodeType string

const (
	NodeTypeStart    NodeType = "START"
	NodeTypeStandard NodeType = "STANDARD"
	NodeTypeInn      NodeType = "INN"
	NodeTypeTreasure NodeType = "TREASURE"
)

type ObjectiveType string

const (
	ObjectiveBossKC         ObjectiveType = "boss_kc"
	ObjectiveXPGain         ObjectiveType = "xp_gain"
	ObjectiveMinigame       ObjectiveType = "minigame"
	ObjectiveItemCollection ObjectiveType = "item_collection"
	ObjectiveClueScrolls    ObjectiveType = "clue_scrolls"
)

// ObjectiveTypes lists every objective type in a stable order.
var ObjectiveTypes = []ObjectiveType{
	ObjectiveBossKC,
	ObjectiveXPGain,
	ObjectiveMinigame,
	ObjectiveItemCollection,
	ObjectiveClueScrolls,
}

type KeyColor string

const (
	KeyRed   KeyColor = "red"
	KeyBlue  KeyColor = "blue"
	KeyGreen KeyColor = "green"
	// KeyAny is only valid in an inn key cost and matches any color.
	KeyAny   KeyColor = "any"
)

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusActive    EventStatus = "active"
	EventStatusCompleted EventStatus = "completed"
)

// EventConfig carries the organiser's coarse parameters for an event.
type EventConfig struct {
	PrizePoolTotal   GP         `json:"prize_pool_total"`
	NumTeams         int        `json:"num_teams"`
	PlayersPerTeam   int        `json:"players_per_team"`
	NodeToInnRatio   int        `json:"node_to_inn_ratio"`
	RewardSplitRatio float64    `json:"reward_split_ratio"`
	Difficulty       Difficulty `json:"difficulty"`
	DurationDays     int        `json:"duration_days"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
}

// ClosesAt is when the event is due to end: EndDate when set, otherwise
// DurationDays after StartDate. Events without either never expire.
func (c EventConfig) ClosesAt() (time.Time, bool) {
	if c.EndDate != nil {
		return *c.EndDate, true
	}
	if c.StartDate != nil && c.DurationDays > 0 {
		return c.StartDate.AddDate(0, 0, c.DurationDays), true
	}
	return time.Time{}, false
}

// DerivedValues are the sizing numbers computed once from an EventConfig.
type DerivedValues struct {
	MaxRewardPerTeam     GP  `json:"max_reward_per_team"`
	ExpectedNodesPerTeam int `json:"expected_nodes_per_team"`
	AvgGPPerNode         GP  `json:"avg_gp_per_node"`
	NumInns              int `json:"num_inns"`
	TotalNodes           int `json:"total_nodes"`
}

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type KeyAmount struct {
	Color    KeyColor `json:"color"`
	Quantity int      `json:"quantity"`
}

// BuffReward is a buff granted on node completion.
type BuffReward struct {
	BuffType BuffType `json:"buff_type"`
	Tier     string   `json:"tier"`
}

type Rewards struct {
	GP    GP           `json:"gp"`
	Keys  []KeyAmount  `json:"keys"`
	Buffs []BuffReward `json:"buffs,omitempty"`
}

// AppliedBuff summarises a reduction that was applied to an objective.
type AppliedBuff struct {
	BuffID      string   `json:"buff_id,omitempty"`
	BuffType    BuffType `json:"buff_type"`
	Reduction   float64  `json:"reduction"`
	SavedAmount int      `json:"saved_amount"`
}

type Objective struct {
	Type             ObjectiveType `json:"type"`
	Target           string        `json:"target"`
	Quantity         int           `json:"quantity"`
	ContentID        string        `json:"content_id"`
	OriginalQuantity *int          `json:"original_quantity,omitempty"`
	AppliedBuff      *AppliedBuff  `json:"applied_buff,omitempty"`
}

// InnReward is one key-for-GP trade on an inn's menu.
type InnReward struct {
	RewardID    string      `json:"reward_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	KeyCost     []KeyAmount `json:"key_cost"`
	Payout      GP          `json:"payout"`
}

type Node struct {
	NodeID           string      `json:"node_id"`
	EventID          string      `json:"event_id"`
	NodeType         NodeType    `json:"node_type"`
	Path             string      `json:"path,omitempty"`
	LocationGroupID  *string     `json:"location_group_id"`
	Coordinates      Coordinates `json:"coordinates"`
	MapLocation      string      `json:"map_location"`
	Prerequisites    []string    `json:"prerequisites"`
	Unlocks          []string    `json:"unlocks"`
	Objective        *Objective  `json:"objective"`
	Rewards          *Rewards    `json:"rewards"`
	DifficultyTier   *int        `json:"difficulty_tier"`
	InnTier          *int        `json:"inn_tier,omitempty"`
	AvailableRewards []InnReward `json:"available_rewards,omitempty"`
}

// PathInfo describes one flavor path. Difficulty is nominal only.
type PathInfo struct {
	Name       string   `json:"name"`
	KeyColor   KeyColor `json:"key_color"`
	Difficulty string   `json:"difficulty"`
}

type MapEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type LocationGroup struct {
	GroupID  string   `json:"group_id"`
	Location string   `json:"location"`
	Path     string   `json:"path"`
	NodeIDs  []string `json:"node_ids"`
}

type MapStructure struct {
	StartNode      string          `json:"start_node"`
	Paths          []PathInfo      `json:"paths"`
	Edges          []MapEdge       `json:"edges"`
	LocationGroups []LocationGroup `json:"location_groups"`
}

// GeneratedMap is the output of one generation run.
type GeneratedMap struct {
	MapStructure MapStructure `json:"map_structure"`
	Nodes        []Node       `json:"nodes"`
}

// ContentSelections overrides catalog defaults for an event. A nil value
// means every entry uses its catalog default.
type ContentSelections struct {
	Enabled          map[string]bool `json:"enabled,omitempty"`
	CustomQuantities map[string]int  `json:"custom_quantities,omitempty"`
}

// TreasureEvent is a Gielinor Rush event and its generated map metadata.
type TreasureEvent struct {
	EventID           string             `json:"event_id"`
	Name              string             `json:"name"`
	Status            EventStatus        `json:"status"`
	Config            EventConfig        `json:"config"`
	DerivedValues     *DerivedValues     `json:"derived_values,omitempty"`
	MapStructure      *MapStructure      `json:"map_structure,omitempty"`
	ContentSelections *ContentSelections `json:"content_selections,omitempty"`
	MapVersion        int                `json:"map_version"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
