// Package buff holds the static buff catalog and the rules for applying a
// buff to an objective.
package buff

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/osse101/GielinorRush_Go/internal/domain"
)

// MinCollectionQuantity is the largest item_collection quantity that cannot be buffed.
const MinCollectionQuantity = 3

// Definition is one row of the buff catalog.
type Definition struct {
	Type           domain.BuffType        `json:"buff_type"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Reduction      float64                `json:"reduction"`
	ObjectiveTypes []domain.ObjectiveType `json:"objective_types"`
	Uses           int                    `json:"uses"`
	Tier           string                 `json:"tier"`
}

var (
	killTypes = []domain.ObjectiveType{domain.ObjectiveBossKC, domain.ObjectiveMinigame}
	xpTypes   = []domain.ObjectiveType{domain.ObjectiveXPGain}
	itemTypes = []domain.ObjectiveType{domain.ObjectiveItemCollection, domain.ObjectiveClueScrolls}
)

var catalog = map[domain.BuffType]Definition{
	domain.BuffKillReductionMinor: {
		Name: "Slayer's Edge", Description: "Reduces a kill count requirement by 25%",
		Reduction: 0.25, ObjectiveTypes: killTypes, Uses: 1, Tier: domain.BuffTierMinor,
	},
	domain.BuffKillReductionModerate: {
		Name: "Slayer's Focus", Description: "Reduces a kill count requirement by 50%",
		Reduction: 0.50, ObjectiveTypes: killTypes, Uses: 1, Tier: domain.BuffTierModerate,
	},
	domain.BuffKillReductionMajor: {
		Name: "Slayer's Mastery", Description: "Reduces a kill count requirement by 75%",
		Reduction: 0.75, ObjectiveTypes: killTypes, Uses: 1, Tier: domain.BuffTierMajor,
	},
	domain.BuffXPReductionMinor: {
		Name: "Scholar's Insight", Description: "Reduces an experience requirement by 25%",
		Reduction: 0.25, ObjectiveTypes: xpTypes, Uses: 1, Tier: domain.BuffTierMinor,
	},
	domain.BuffXPReductionModerate: {
		Name: "Scholar's Wisdom", Description: "Reduces an experience requirement by 50%",
		Reduction: 0.50, ObjectiveTypes: xpTypes, Uses: 1, Tier: domain.BuffTierModerate,
	},
	domain.BuffXPReductionMajor: {
		Name: "Scholar's Enlightenment", Description: "Reduces an experience requirement by 75%",
		Reduction: 0.75, ObjectiveTypes: xpTypes, Uses: 1, Tier: domain.BuffTierMajor,
	},
	domain.BuffItemReductionMinor: {
		Name: "Gatherer's Luck", Description: "Reduces an item collection requirement by 25%",
		Reduction: 0.25, ObjectiveTypes: itemTypes, Uses: 1, Tier: domain.BuffTierMinor,
	},
	domain.BuffItemReductionModerate: {
		Name: "Gatherer's Fortune", Description: "Reduces an item collection requirement by 50%",
		Reduction: 0.50, ObjectiveTypes: itemTypes, Uses: 1, Tier: domain.BuffTierModerate,
	},
	domain.BuffItemReductionMajor: {
		Name: "Gatherer's Bounty", Description: "Reduces an item collection requirement by 75%",
		Reduction: 0.75, ObjectiveTypes: itemTypes, Uses: 1, Tier: domain.BuffTierMajor,
	},
	domain.BuffUniversalReduction: {
		Name: "Jack of All Trades", Description: "Reduces any objective requirement by 50%",
		Reduction: 0.50, ObjectiveTypes: domain.ObjectiveTypes, Uses: 1, Tier: domain.BuffTierUniversal,
	},
	domain.BuffLuckyCharm: {
		Name: "Lucky Charm", Description: "Reduces any objective requirement by 25%, three times",
		Reduction: 0.25, ObjectiveTypes: domain.ObjectiveTypes, Uses: 3, Tier: domain.BuffTierMinor,
	},
}

// order fixes iteration over the catalog.
var order = []domain.BuffType{
	domain.BuffKillReductionMinor,
	domain.BuffKillReductionModerate,
	domain.BuffKillReductionMajor,
	domain.BuffXPReductionMinor,
	domain.BuffXPReductionModerate,
	domain.BuffXPReductionMajor,
	domain.BuffItemReductionMinor,
	domain.BuffItemReductionModerate,
	domain.BuffItemReductionMajor,
	domain.BuffUniversalReduction,
	domain.BuffLuckyCharm,
}

// Tier buckets used when rewards are assigned during map generation.
var (
	MinorRewards    = []domain.BuffType{domain.BuffKillReductionMinor, domain.BuffXPReductionMinor, domain.BuffItemReductionMinor}
	ModerateRewards = []domain.BuffType{domain.BuffKillReductionModerate, domain.BuffXPReductionModerate, domain.BuffItemReductionModerate}
	MajorRewards    = []domain.BuffType{domain.BuffKillReductionMajor, domain.BuffXPReductionMajor, domain.BuffItemReductionMajor}
)

// Lookup returns the catalog row for t.
func Lookup(t domain.BuffType) (Definition, bool) {
	def, ok := catalog[t]
	if !ok {
		return Definition{}, false
	}
	def.Type = t
	return def, true
}

// All returns every catalog row in a stable order.
func All() []Definition {
	defs := make([]Definition, 0, len(order))
	for _, t := range order {
		def, _ := Lookup(t)
		defs = append(defs, def)
	}
	return defs
}

// CreateBuff instantiates a fresh buff with a new id and full uses.
func CreateBuff(t domain.BuffType) (*domain.Buff, error) {
	def, ok := Lookup(t)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBuffType, t)
	}
	return &domain.Buff{
		BuffID:         uuid.NewString(),
		BuffType:       t,
		BuffName:       def.Name,
		Reduction:      def.Reduction,
		ObjectiveTypes: append([]domain.ObjectiveType(nil), def.ObjectiveTypes...),
		UsesRemaining:  def.Uses,
		MaxUses:        def.Uses,
	}, nil
}

// CanApplyBuff reports whether b may reduce obj.
func CanApplyBuff(b *domain.Buff, obj *domain.Objective) bool {
	if b == nil || obj == nil || b.UsesRemaining <= 0 {
		return false
	}
	if obj.Type == domain.ObjectiveItemCollection && obj.Quantity <= MinCollectionQuantity {
		return false
	}
	for _, t := range b.ObjectiveTypes {
		if t == obj.Type {
			return true
		}
	}
	return false
}

// ApplyBuffToObjective returns a copy of obj with its quantity reduced by b.
// Uses are not touched; the caller owns the buff inventory.
func ApplyBuffToObjective(obj *domain.Objective, b *domain.Buff) (*domain.Objective, error) {
	if !CanApplyBuff(b, obj) {
		return nil, domain.ErrBuffNotApplicable
	}

	reduced := ReducedQuantity(obj.Quantity, b.Reduction)
	original := obj.Quantity
	if obj.OriginalQuantity != nil {
		original = *obj.OriginalQuantity
	}

	out := *obj
	out.Quantity = reduced
	out.OriginalQuantity = &original
	out.AppliedBuff = &domain.AppliedBuff{
		BuffID:      b.BuffID,
		BuffType:    b.BuffType,
		Reduction:   b.Reduction,
		SavedAmount: obj.Quantity - reduced,
	}
	return &out, nil
}

// ReducedQuantity is ceil(quantity * (1 - reduction)).
func ReducedQuantity(quantity int, reduction float64) int {
	if quantity <= 0 {
		return quantity
	}
	// the epsilon keeps exact products like 100*0.5 from ceiling up
	reduced := int(math.Ceil(float64(quantity)*(1-reduction) - 1e-9))
	if reduced < 1 {
		return 1
	}
	if reduced > quantity {
		return quantity
	}
	return reduced
}
