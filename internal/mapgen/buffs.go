package mapgen

import (
	"github.com/osse101/GielinorRush_Go/internal/buff"
	"github.com/osse101/GielinorRush_Go/internal/domain"
)

// Share of STANDARD nodes that carry a buff reward, and how that allotment
// splits across tiers, all in percent.
const (
	buffedNodePercent   = 30
	minorAllotment      = 50
	moderateAllotment   = 35
	universalOneInMajor = 3
)

// assignBuffs gives a random sample of STANDARD nodes a buff reward,
// stratified by difficulty tier.
func (g *Generator) assignBuffs() {
	var minor, moderate, major []int
	for i, n := range g.nodes {
		if n.NodeType != domain.NodeTypeStandard || n.DifficultyTier == nil {
			continue
		}
		switch tier := *n.DifficultyTier; {
		case tier <= 2:
			minor = append(minor, i)
		case tier <= 4:
			moderate = append(moderate, i)
		default:
			major = append(major, i)
		}
	}

	total := len(minor) + len(moderate) + len(major)
	count := roundPercent(total, buffedNodePercent)
	minorN := roundPercent(count, minorAllotment)
	moderateN := roundPercent(count, moderateAllotment)
	majorN := max(count-minorN-moderateN, 0)

	for _, i := range g.sample(minor, minorN) {
		g.grantBuff(i, buff.MinorRewards[g.rng.Intn(len(buff.MinorRewards))], domain.BuffTierMinor)
	}
	for _, i := range g.sample(moderate, moderateN) {
		g.grantBuff(i, buff.ModerateRewards[g.rng.Intn(len(buff.ModerateRewards))], domain.BuffTierModerate)
	}
	for _, i := range g.sample(major, majorN) {
		if g.rng.Intn(universalOneInMajor) == 0 {
			g.grantBuff(i, domain.BuffUniversalReduction, domain.BuffTierUniversal)
			continue
		}
		g.grantBuff(i, buff.MajorRewards[g.rng.Intn(len(buff.MajorRewards))], domain.BuffTierMajor)
	}
}

func (g *Generator) grantBuff(i int, t domain.BuffType, tier string) {
	r := g.nodes[i].Rewards
	if r == nil {
		r = &domain.Rewards{}
		g.nodes[i].Rewards = r
	}
	r.Buffs = append(r.Buffs, domain.BuffReward{BuffType: t, Tier: tier})
}

// sample picks up to n distinct entries of pool.
func (g *Generator) sample(pool []int, n int) []int {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]int, 0, n)
	for _, j := range g.rng.Perm(len(pool))[:n] {
		out = append(out, pool[j])
	}
	return out
}

func roundPercent(n, pct int) int {
	return (n*pct + 50) / 100
}
