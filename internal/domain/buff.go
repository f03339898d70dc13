package domain

// BuffType is the closed set of buff kinds.
type BuffType string

const (
	BuffKillReductionMinor    BuffType = "kill_reduction_minor"
	BuffKillReductionModerate BuffType = "kill_reduction_moderate"
	BuffKillReductionMajor    BuffType = "kill_reduction_major"
	BuffXPReductionMinor      BuffType = "xp_reduction_minor"
	BuffXPReductionModerate   BuffType = "xp_reduction_moderate"
	BuffXPReductionMajor      BuffType = "xp_reduction_major"
	BuffItemReductionMinor    BuffType = "item_reduction_minor"
	BuffItemReductionModerate BuffType = "item_reduction_moderate"
	BuffItemReductionMajor    BuffType = "item_reduction_major"
	BuffUniversalReduction    BuffType = "universal_reduction"
	BuffLuckyCharm            BuffType = "lucky_charm"
)

// Buff reward tiers as recorded on node rewards.
const (
	BuffTierMinor     = "minor"
	BuffTierModerate  = "moderate"
	BuffTierMajor     = "major"
	BuffTierUniversal = "universal"
)
