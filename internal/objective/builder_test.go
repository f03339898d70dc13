package objective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GielinorRush_Go/internal/domain"
)

func findCandidate(cands []Candidate, id string) (Candidate, bool) {
	for _, c := range cands {
		if c.ContentID == id {
			return c, true
		}
	}
	return Candidate{}, false
}

func TestBuildFormattedObjectives_Defaults(t *testing.T) {
	f := BuildFormattedObjectives(nil)

	for _, typ := range domain.ObjectiveTypes {
		require.Contains(t, f, typ)
	}

	_, ok := findCandidate(f[domain.ObjectiveBossKC][domain.ContentEasy], "giant_mole")
	assert.True(t, ok, "easy bosses land in the easy bucket")

	_, ok = findCandidate(f[domain.ObjectiveBossKC][domain.ContentHard], "chambers_of_xeric")
	assert.True(t, ok, "raids land in the hard bucket")

	_, ok = findCandidate(f[domain.ObjectiveBossKC][domain.ContentHard], "nex")
	assert.False(t, ok, "default-disabled content is skipped")

	_, ok = findCandidate(f[domain.ObjectiveItemCollection][domain.ContentHard], "scythe_of_vitur")
	assert.False(t, ok, "items whose source is disabled are skipped")

	for _, d := range difficulties {
		c, ok := findCandidate(f[domain.ObjectiveXPGain][d], "agility")
		require.True(t, ok, "skills populate every bucket")
		assert.Equal(t, DefaultQuantity(domain.ObjectiveXPGain, d), c.Quantity)
	}
}

func TestBuildFormattedObjectives_ClueTiers(t *testing.T) {
	f := BuildFormattedObjectives(nil)
	clues := f[domain.ObjectiveClueScrolls]

	_, ok := findCandidate(clues[domain.ContentEasy], "clue_beginner")
	assert.True(t, ok)
	_, ok = findCandidate(clues[domain.ContentMedium], "clue_hard")
	assert.True(t, ok)
	_, ok = findCandidate(clues[domain.ContentHard], "clue_elite")
	assert.True(t, ok)
}

func TestBuildFormattedObjectives_Selections(t *testing.T) {
	sel := &domain.ContentSelections{
		Enabled: map[string]bool{
			"zulrah":           false,
			"theatre_of_blood": true,
		},
		CustomQuantities: map[string]int{"vorkath": 7},
	}
	f := BuildFormattedObjectives(sel)

	_, ok := findCandidate(f[domain.ObjectiveBossKC][domain.ContentMedium], "zulrah")
	assert.False(t, ok)
	_, ok = findCandidate(f[domain.ObjectiveItemCollection][domain.ContentMedium], "tanzanite_fang")
	assert.False(t, ok, "disabling a boss removes its drops")
	_, ok = findCandidate(f[domain.ObjectiveItemCollection][domain.ContentHard], "scythe_of_vitur")
	assert.True(t, ok, "enabling a raid restores its drops")

	vork, ok := findCandidate(f[domain.ObjectiveBossKC][domain.ContentMedium], "vorkath")
	require.True(t, ok)
	assert.Equal(t, 7, vork.Quantity)
	assert.True(t, vork.Custom)
}

func TestBuildFormattedObjectives_EmptyBuckets(t *testing.T) {
	disabled := map[string]bool{}
	for _, e := range Catalog() {
		disabled[e.ID] = false
	}
	f := BuildFormattedObjectives(&domain.ContentSelections{Enabled: disabled})

	for _, d := range difficulties {
		assert.Zero(t, f.Count(d))
		assert.Empty(t, f.TypesFor(d))
	}
}

func TestValidateSelections(t *testing.T) {
	assert.NoError(t, ValidateSelections(nil))
	assert.NoError(t, ValidateSelections(&domain.ContentSelections{Enabled: map[string]bool{"zulrah": true}}))

	err := ValidateSelections(&domain.ContentSelections{Enabled: map[string]bool{"zulrha": true}})
	require.ErrorIs(t, err, domain.ErrUnknownContent)
	assert.Contains(t, err.Error(), "did you mean zulrah?")

	err = ValidateSelections(&domain.ContentSelections{CustomQuantities: map[string]int{"vorkath": 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "vorkath", Suggest("Vorkat"))
	assert.Equal(t, "", Suggest("completely-unrelated-content"))
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Catalog() {
		assert.False(t, seen[e.ID], e.ID)
		seen[e.ID] = true
		if e.RequiredContent != "" {
			_, ok := Lookup(e.RequiredContent)
			assert.True(t, ok, "%s requires unknown content %s", e.ID, e.RequiredContent)
		}
	}
}
