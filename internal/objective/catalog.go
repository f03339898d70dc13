// Package objective holds the static OSRS content catalog and turns an
// event's content selection into difficulty-bucketed objective candidates.
package objective

import "github.com/osse101/GielinorRush_Go/internal/domain"

// Entry is one piece of in-game content that can become an objective.
type Entry struct {
	ID   string               `json:"id"`
	Name string               `json:"name"`
	Type domain.ObjectiveType `json:"type"`
	// Category is empty for skills, which populate every bucket.
	Category        domain.ContentDifficulty `json:"category,omitempty"`
	DefaultEnabled  bool                     `json:"default_enabled"`
	RequiredContent string                   `json:"required_content,omitempty"`
	Kind            string                   `json:"kind"`
}

// Entry kinds
const (
	KindBoss     = "boss"
	KindRaid     = "raid"
	KindSkill    = "skill"
	KindMinigame = "minigame"
	KindItem     = "item"
	KindClue     = "clue"
)

type quantityRange struct {
	Min, Max int
}

// defaultQuantities is keyed by objective type then bucket; the builder uses Max.
var defaultQuantities = map[domain.ObjectiveType]map[domain.ContentDifficulty]quantityRange{
	domain.ObjectiveBossKC: {
		domain.ContentEasy:   {Min: 25, Max: 50},
		domain.ContentMedium: {Min: 10, Max: 25},
		domain.ContentHard:   {Min: 3, Max: 10},
	},
	domain.ObjectiveXPGain: {
		domain.ContentEasy:   {Min: 250_000, Max: 500_000},
		domain.ContentMedium: {Min: 750_000, Max: 1_500_000},
		domain.ContentHard:   {Min: 2_000_000, Max: 5_000_000},
	},
	domain.ObjectiveMinigame: {
		domain.ContentEasy:   {Min: 5, Max: 10},
		domain.ContentMedium: {Min: 10, Max: 20},
		domain.ContentHard:   {Min: 20, Max: 40},
	},
	domain.ObjectiveItemCollection: {
		domain.ContentEasy:   {Min: 5, Max: 10},
		domain.ContentMedium: {Min: 2, Max: 5},
		domain.ContentHard:   {Min: 1, Max: 2},
	},
	domain.ObjectiveClueScrolls: {
		domain.ContentEasy:   {Min: 10, Max: 20},
		domain.ContentMedium: {Min: 5, Max: 10},
		domain.ContentHard:   {Min: 2, Max: 5},
	},
}

func boss(id, name string, cat domain.ContentDifficulty, enabled bool) Entry {
	return Entry{ID: id, Name: name, Type: domain.ObjectiveBossKC, Category: cat, DefaultEnabled: enabled, Kind: KindBoss}
}

func raid(id, name string, enabled bool) Entry {
	return Entry{ID: id, Name: name, Type: domain.ObjectiveBossKC, Category: domain.ContentHard, DefaultEnabled: enabled, Kind: KindRaid}
}

func skill(id, name string) Entry {
	return Entry{ID: id, Name: name, Type: domain.ObjectiveXPGain, DefaultEnabled: true, Kind: KindSkill}
}

func minigame(id, name string, cat domain.ContentDifficulty, enabled bool) Entry {
	return Entry{ID: id, Name: name, Type: domain.ObjectiveMinigame, Category: cat, DefaultEnabled: enabled, Kind: KindMinigame}
}

func item(id, name string, cat domain.ContentDifficulty, requires string) Entry {
	return Entry{ID: id, Name: name, Type: domain.ObjectiveItemCollection, Category: cat, DefaultEnabled: true, RequiredContent: requires, Kind: KindItem}
}

func clue(id, name string, cat domain.ContentDifficulty, enabled bool) Entry {
	return Entry{ID: id, Name: name, Type: domain.ObjectiveClueScrolls, Category: cat, DefaultEnabled: enabled, Kind: KindClue}
}

var entries = []Entry{
	boss("giant_mole", "Giant Mole", domain.ContentEasy, true),
	boss("obor", "Obor", domain.ContentEasy, true),
	boss("bryophyta", "Bryophyta", domain.ContentEasy, true),
	boss("barrows", "Barrows Chests", domain.ContentEasy, true),
	boss("sarachnis", "Sarachnis", domain.ContentEasy, true),
	boss("scurrius", "Scurrius", domain.ContentEasy, true),
	boss("zulrah", "Zulrah", domain.ContentMedium, true),
	boss("vorkath", "Vorkath", domain.ContentMedium, true),
	boss("kraken", "Kraken", domain.ContentMedium, true),
	boss("cerberus", "Cerberus", domain.ContentMedium, true),
	boss("grotesque_guardians", "Grotesque Guardians", domain.ContentMedium, true),
	boss("general_graardor", "General Graardor", domain.ContentMedium, true),
	boss("commander_zilyana", "Commander Zilyana", domain.ContentMedium, true),
	boss("phantom_muspah", "Phantom Muspah", domain.ContentMedium, true),
	boss("corporeal_beast", "Corporeal Beast", domain.ContentHard, true),
	boss("nightmare", "The Nightmare", domain.ContentHard, true),
	boss("corrupted_gauntlet", "Corrupted Gauntlet", domain.ContentHard, true),
	boss("vardorvis", "Vardorvis", domain.ContentHard, true),
	boss("the_leviathan", "The Leviathan", domain.ContentHard, true),
	boss("nex", "Nex", domain.ContentHard, false),

	raid("chambers_of_xeric", "Chambers of Xeric", true),
	raid("tombs_of_amascut", "Tombs of Amascut", true),
	raid("theatre_of_blood", "Theatre of Blood", false),

	skill("agility", "Agility"),
	skill("fishing", "Fishing"),
	skill("woodcutting", "Woodcutting"),
	skill("mining", "Mining"),
	skill("slayer", "Slayer"),
	skill("runecraft", "Runecraft"),
	skill("hunter", "Hunter"),
	skill("thieving", "Thieving"),
	skill("farming", "Farming"),
	skill("construction", "Construction"),
	skill("smithing", "Smithing"),
	skill("herblore", "Herblore"),

	minigame("wintertodt", "Wintertodt", domain.ContentEasy, true),
	minigame("tempoross", "Tempoross", domain.ContentEasy, true),
	minigame("guardians_of_the_rift", "Guardians of the Rift", domain.ContentEasy, true),
	minigame("pest_control", "Pest Control", domain.ContentEasy, true),
	minigame("barbarian_assault", "Barbarian Assault", domain.ContentMedium, true),
	minigame("soul_wars", "Soul Wars", domain.ContentMedium, true),
	minigame("volcanic_mine", "Volcanic Mine", domain.ContentMedium, true),
	minigame("hallowed_sepulchre", "Hallowed Sepulchre", domain.ContentHard, true),
	minigame("last_man_standing", "Last Man Standing", domain.ContentHard, false),

	item("mole_skin", "Mole skins", domain.ContentEasy, "giant_mole"),
	item("barrows_item", "Barrows equipment", domain.ContentEasy, "barrows"),
	item("warm_gloves", "Warm gloves", domain.ContentEasy, "wintertodt"),
	item("tanzanite_fang", "Tanzanite fang", domain.ContentMedium, "zulrah"),
	item("dragonbone_necklace", "Dragonbone necklace", domain.ContentMedium, "vorkath"),
	item("trident_of_the_seas", "Trident of the seas", domain.ContentMedium, "kraken"),
	item("bandos_chestplate", "Bandos chestplate", domain.ContentMedium, "general_graardor"),
	item("spirit_shield", "Spirit shield", domain.ContentHard, "corporeal_beast"),
	item("enhanced_crystal_weapon_seed", "Enhanced crystal weapon seed", domain.ContentHard, "corrupted_gauntlet"),
	item("twisted_bow", "Twisted bow", domain.ContentHard, "chambers_of_xeric"),
	item("scythe_of_vitur", "Scythe of vitur", domain.ContentHard, "theatre_of_blood"),

	clue("clue_beginner", "Beginner clue scrolls", domain.ContentEasy, true),
	clue("clue_easy", "Easy clue scrolls", domain.ContentEasy, true),
	clue("clue_medium", "Medium clue scrolls", domain.ContentMedium, true),
	clue("clue_hard", "Hard clue scrolls", domain.ContentMedium, true),
	clue("clue_elite", "Elite clue scrolls", domain.ContentHard, true),
	clue("clue_master", "Master clue scrolls", domain.ContentHard, false),
}

var byID = func() map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.ID] = e
	}
	return m
}()

// Catalog returns a copy of every catalog entry.
func Catalog() []Entry {
	return append([]Entry(nil), entries...)
}

// Lookup finds an entry by content id.
func Lookup(id string) (Entry, bool) {
	e, ok := byID[id]
	return e, ok
}

// DefaultQuantity is the top of the default range for a type and bucket.
func DefaultQuantity(t domain.ObjectiveType, d domain.ContentDifficulty) int {
	return defaultQuantities[t][d].Max
}
