package mapgen

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/GielinorRush_Go/internal/domain"
)

// Config defaults applied when a field is left zero.
const (
	DefaultNodeToInnRatio   = 5
	DefaultRewardSplitRatio = 0.8
	DefaultDifficulty       = domain.DifficultyNormal

	nodesPerPlayerWeek = 10
	daysPerWeek        = 7
)

// difficultyPercent scales catalog default quantities by event difficulty.
var difficultyPercent = map[domain.Difficulty]int{
	domain.DifficultyEasy:      75,
	domain.DifficultyNormal:    100,
	domain.DifficultyHard:      125,
	domain.DifficultySweatlord: 150,
}

// WithDefaults fills zero-valued optional fields of cfg.
func WithDefaults(cfg domain.EventConfig) domain.EventConfig {
	if cfg.NodeToInnRatio == 0 {
		cfg.NodeToInnRatio = DefaultNodeToInnRatio
	}
	if cfg.RewardSplitRatio == 0 {
		cfg.RewardSplitRatio = DefaultRewardSplitRatio
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = DefaultDifficulty
	}
	if cfg.DurationDays == 0 && cfg.StartDate != nil && cfg.EndDate != nil {
		hours := cfg.EndDate.Sub(*cfg.StartDate).Hours()
		cfg.DurationDays = int(math.Ceil(hours / 24))
	}
	return cfg
}

// ValidateConfig checks cfg after defaults are applied.
func ValidateConfig(cfg domain.EventConfig) error {
	if cfg.NumTeams <= 0 || cfg.PlayersPerTeam <= 0 || cfg.PrizePoolTotal.Sign() <= 0 {
		return fmt.Errorf("%w: prize pool, team count and players per team must be positive", domain.ErrMissingEventConfig)
	}
	if cfg.StartDate != nil && cfg.EndDate != nil && !cfg.EndDate.After(*cfg.StartDate) {
		return fmt.Errorf("%w: end date %s is not after start date %s", domain.ErrInvalidDateRange,
			cfg.EndDate.Format(time.RFC3339), cfg.StartDate.Format(time.RFC3339))
	}
	if cfg.DurationDays <= 0 {
		return fmt.Errorf("%w: duration must be at least one day", domain.ErrInvalidDateRange)
	}
	if cfg.NodeToInnRatio < 1 {
		return fmt.Errorf("%w: node_to_inn_ratio must be positive", domain.ErrInvalidEventConfig)
	}
	if cfg.RewardSplitRatio <= 0 || cfg.RewardSplitRatio > 1 {
		return fmt.Errorf("%w: reward_split_ratio must be in (0, 1]", domain.ErrInvalidEventConfig)
	}
	if _, ok := difficultyPercent[cfg.Difficulty]; !ok {
		return fmt.Errorf("%w: unknown difficulty %q", domain.ErrInvalidEventConfig, cfg.Difficulty)
	}
	return nil
}

// ComputeDerivedValues turns an event's coarse parameters into sizing numbers.
func ComputeDerivedValues(cfg domain.EventConfig) (domain.DerivedValues, error) {
	cfg = WithDefaults(cfg)
	if err := ValidateConfig(cfg); err != nil {
		return domain.DerivedValues{}, err
	}

	// floor(10 * players * days/7) without going through floats
	expected := nodesPerPlayerWeek * cfg.PlayersPerTeam * cfg.DurationDays / daysPerWeek
	if expected < 1 {
		return domain.DerivedValues{}, fmt.Errorf("%w: event is too short to hold any nodes", domain.ErrInvalidEventConfig)
	}

	maxReward := cfg.PrizePoolTotal.DivInt(int64(cfg.NumTeams))
	splitMilli := int64(math.Round(cfg.RewardSplitRatio * 1000))

	return domain.DerivedValues{
		MaxRewardPerTeam:     maxReward,
		ExpectedNodesPerTeam: expected,
		AvgGPPerNode:         maxReward.MulFrac(splitMilli, 1000*int64(expected)),
		NumInns:              expected / cfg.NodeToInnRatio,
		TotalNodes:           expected * 3 / 2,
	}, nil
}

// scaleQuantity applies the event difficulty to a catalog default.
func scaleQuantity(q int, d domain.Difficulty) int {
	pct, ok := difficultyPercent[d]
	if !ok {
		pct = 100
	}
	return (q*pct + 99) / 100
}
