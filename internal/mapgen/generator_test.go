package mapgen

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/objective"
)

var fixedClock = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }

func generate(t *testing.T, seed int64, cfg domain.EventConfig, sel *domain.ContentSelections) *domain.GeneratedMap {
	t.Helper()
	dv, err := ComputeDerivedValues(cfg)
	require.NoError(t, err)
	m, err := NewGenerator(seed, fixedClock).Generate(cfg, dv, sel)
	require.NoError(t, err)
	return m
}

func countType(nodes []domain.Node, typ domain.NodeType) int {
	n := 0
	for _, node := range nodes {
		if node.NodeType == typ {
			n++
		}
	}
	return n
}

func TestGenerate_TotalNodeCount(t *testing.T) {
	m := generate(t, 1, sampleConfig(), nil)

	assert.Len(t, m.Nodes, 90)
	assert.Equal(t, 1, countType(m.Nodes, domain.NodeTypeStart))
	assert.Equal(t, 1, countType(m.Nodes, domain.NodeTypeTreasure))
	assert.Positive(t, countType(m.Nodes, domain.NodeTypeInn))
	assert.Equal(t, m.Nodes[0].NodeID, m.MapStructure.StartNode)
	assert.Equal(t, domain.NodeTypeTreasure, m.Nodes[len(m.Nodes)-1].NodeType)
	assert.Len(t, m.MapStructure.Paths, 3)
}

func TestGenerate_Invariants(t *testing.T) {
	configs := []domain.EventConfig{
		sampleConfig(),
		{PrizePoolTotal: domain.NewGP(500_000_000), NumTeams: 8, PlayersPerTeam: 5, DurationDays: 28, NodeToInnRatio: 12, Difficulty: domain.DifficultyHard},
		{PrizePoolTotal: domain.NewGP(1_000_000), NumTeams: 2, PlayersPerTeam: 1, DurationDays: 7},
		{PrizePoolTotal: domain.NewGP(1_000_000), NumTeams: 2, PlayersPerTeam: 2, DurationDays: 5, NodeToInnRatio: 30},
	}

	for ci, cfg := range configs {
		for seed := int64(0); seed < 20; seed++ {
			dv, err := ComputeDerivedValues(cfg)
			require.NoError(t, err)
			m, err := NewGenerator(seed, fixedClock).Generate(cfg, dv, nil)
			require.NoError(t, err, "config %d seed %d", ci, seed)

			assert.Len(t, m.Nodes, dv.TotalNodes)
			require.NoError(t, Validate(m.Nodes))
			assertPrerequisitesReachable(t, m.Nodes)
		}
	}
}

// every node must trace back to START through its prerequisites
func assertPrerequisitesReachable(t *testing.T, nodes []domain.Node) {
	t.Helper()
	reached := map[string]bool{}
	for _, n := range nodes {
		if n.NodeType == domain.NodeTypeStart {
			reached[n.NodeID] = true
			continue
		}
		require.NotEmpty(t, n.Prerequisites, n.NodeID)
		ok := false
		for _, p := range n.Prerequisites {
			ok = ok || reached[p]
		}
		require.True(t, ok, "node %s has no reachable prerequisite", n.NodeID)
		reached[n.NodeID] = true
	}
}

func TestGenerate_NodeShapes(t *testing.T) {
	m := generate(t, 7, sampleConfig(), nil)
	idPattern := regexp.MustCompile(`^evt_[0-9a-z]+_node_\d+$`)

	for _, n := range m.Nodes {
		assert.Regexp(t, idPattern, n.NodeID)

		switch n.NodeType {
		case domain.NodeTypeStart:
			assert.Empty(t, n.Prerequisites)
			assert.Nil(t, n.LocationGroupID)
		case domain.NodeTypeInn:
			assert.Nil(t, n.Objective)
			assert.Nil(t, n.Rewards)
			assert.Nil(t, n.LocationGroupID)
			require.NotNil(t, n.InnTier)
			assert.GreaterOrEqual(t, len(n.AvailableRewards), 2)
			assert.LessOrEqual(t, len(n.AvailableRewards), 3)
			for _, r := range n.AvailableRewards {
				assert.Positive(t, r.Payout.Sign())
				assert.NotEmpty(t, r.KeyCost)
			}
		case domain.NodeTypeStandard:
			require.NotNil(t, n.LocationGroupID)
			require.NotNil(t, n.DifficultyTier)
			require.NotNil(t, n.Objective)
			require.NotNil(t, n.Rewards)
			assert.Contains(t, []int{1, 3, 5}, *n.DifficultyTier)
			require.Len(t, n.Rewards.Keys, 1)
			if *n.DifficultyTier == 5 {
				assert.Equal(t, 2, n.Rewards.Keys[0].Quantity)
			} else {
				assert.Equal(t, 1, n.Rewards.Keys[0].Quantity)
			}
		}
	}
}

func TestGenerate_TierRewards(t *testing.T) {
	m := generate(t, 3, sampleConfig(), nil)
	want := map[int]string{1: "16666", 3: "33333", 5: "49999"}
	colors := map[string]domain.KeyColor{"mountain": domain.KeyRed, "trade": domain.KeyBlue, "coastal": domain.KeyGreen}

	for _, n := range m.Nodes {
		if n.NodeType != domain.NodeTypeStandard {
			continue
		}
		assert.Equal(t, want[*n.DifficultyTier], n.Rewards.GP.String())
		assert.Equal(t, colors[n.Path], n.Rewards.Keys[0].Color)
	}
}

func TestGenerate_LocationGroups(t *testing.T) {
	m := generate(t, 11, sampleConfig(), nil)
	byID := map[string]domain.Node{}
	for _, n := range m.Nodes {
		byID[n.NodeID] = n
	}

	for _, g := range m.MapStructure.LocationGroups {
		require.Len(t, g.NodeIDs, 3)
		first := byID[g.NodeIDs[0]]
		for i, id := range g.NodeIDs {
			n := byID[id]
			assert.Equal(t, groupTiers[i], *n.DifficultyTier)
			assert.Equal(t, first.MapLocation, n.MapLocation)
			assert.Equal(t, first.Coordinates, n.Coordinates)
			assert.ElementsMatch(t, first.Unlocks, n.Unlocks)
			assert.Equal(t, first.Prerequisites, n.Prerequisites)
		}
	}
}

func TestGenerate_BuffDistribution(t *testing.T) {
	m := generate(t, 5, sampleConfig(), nil)

	standard, buffed := 0, 0
	byTier := map[string]int{}
	for _, n := range m.Nodes {
		if n.NodeType != domain.NodeTypeStandard {
			assert.True(t, n.Rewards == nil || len(n.Rewards.Buffs) == 0, "only STANDARD nodes get buffs")
			continue
		}
		standard++
		if len(n.Rewards.Buffs) == 0 {
			continue
		}
		buffed++
		require.Len(t, n.Rewards.Buffs, 1, "sampling is without replacement")
		b := n.Rewards.Buffs[0]
		byTier[b.Tier]++
		switch b.Tier {
		case domain.BuffTierMinor:
			assert.Equal(t, 1, *n.DifficultyTier)
		case domain.BuffTierModerate:
			assert.Equal(t, 3, *n.DifficultyTier)
		case domain.BuffTierMajor, domain.BuffTierUniversal:
			assert.Equal(t, 5, *n.DifficultyTier)
		}
	}

	count := roundPercent(standard, buffedNodePercent)
	assert.Equal(t, count, buffed)
	assert.Equal(t, roundPercent(count, minorAllotment), byTier[domain.BuffTierMinor])
	assert.Equal(t, roundPercent(count, moderateAllotment), byTier[domain.BuffTierModerate])
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(t, 42, sampleConfig(), nil)
	b := generate(t, 42, sampleConfig(), nil)
	require.Len(t, b.Nodes, len(a.Nodes))
	for i := range a.Nodes {
		assert.Equal(t, a.Nodes[i].NodeID, b.Nodes[i].NodeID)
		assert.Equal(t, a.Nodes[i].MapLocation, b.Nodes[i].MapLocation)
		assert.Equal(t, a.Nodes[i].Objective, b.Nodes[i].Objective)
	}
}

func TestGenerate_DifficultyScaling(t *testing.T) {
	cfg := sampleConfig()
	cfg.Difficulty = domain.DifficultySweatlord
	only := map[string]bool{}
	for _, e := range objective.Catalog() {
		only[e.ID] = e.ID == "agility"
	}
	sel := &domain.ContentSelections{Enabled: only}

	m := generate(t, 9, cfg, sel)
	for _, n := range m.Nodes {
		if n.NodeType != domain.NodeTypeStandard {
			continue
		}
		bucket := tierBucket(*n.DifficultyTier)
		assert.Equal(t, scaleQuantity(objective.DefaultQuantity(domain.ObjectiveXPGain, bucket), domain.DifficultySweatlord), n.Objective.Quantity)
	}

	sel.CustomQuantities = map[string]int{"agility": 123}
	m = generate(t, 9, cfg, sel)
	for _, n := range m.Nodes {
		if n.NodeType == domain.NodeTypeStandard {
			assert.Equal(t, 123, n.Objective.Quantity, "custom quantities are not scaled")
		}
	}
}

func TestGenerate_NoObjectiveAvailable(t *testing.T) {
	easyBossesOnly := map[string]bool{}
	for _, e := range objective.Catalog() {
		easyBossesOnly[e.ID] = e.Type == domain.ObjectiveBossKC && e.Category == domain.ContentEasy
	}
	cfg := sampleConfig()
	dv, err := ComputeDerivedValues(cfg)
	require.NoError(t, err)

	_, err = NewGenerator(1, fixedClock).Generate(cfg, dv, &domain.ContentSelections{Enabled: easyBossesOnly})

	require.ErrorIs(t, err, domain.ErrNoObjectiveAvailable)
	var noObj *domain.NoObjectiveAvailableError
	require.True(t, errors.As(err, &noObj))
	assert.Equal(t, domain.ContentMedium, noObj.Difficulty)
}

func TestGenerate_TooSmall(t *testing.T) {
	cfg := domain.EventConfig{PrizePoolTotal: domain.NewGP(100), NumTeams: 1, PlayersPerTeam: 1, DurationDays: 3}
	dv, err := ComputeDerivedValues(cfg)
	require.NoError(t, err)
	require.Less(t, dv.TotalNodes, MinTotalNodes)

	_, err = NewGenerator(1, fixedClock).Generate(cfg, dv, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidEventConfig)
}

func TestGenerate_DuplicateNodeID(t *testing.T) {
	cfg := sampleConfig()
	dv, err := ComputeDerivedValues(cfg)
	require.NoError(t, err)

	g := NewGenerator(1, fixedClock)
	g.formatID = func(prefix string, n int) string { return prefix + "_node_1" }

	_, err = g.Generate(cfg, dv, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicateNodeID)
}

func TestGenerate_InnPrerequisitesAreHeads(t *testing.T) {
	m := generate(t, 13, sampleConfig(), nil)
	byID := map[string]domain.Node{}
	for _, n := range m.Nodes {
		byID[n.NodeID] = n
	}

	first := true
	for _, n := range m.Nodes {
		if n.NodeType != domain.NodeTypeInn {
			continue
		}
		if first {
			// the first inn joins the three starting paths
			assert.Len(t, n.Prerequisites, 3)
			first = false
		}
		for _, p := range n.Prerequisites {
			pre := byID[p]
			if pre.NodeType == domain.NodeTypeStandard {
				assert.Equal(t, 1, *pre.DifficultyTier, "inns hang off path heads")
			}
			assert.Contains(t, pre.Unlocks, n.NodeID)
		}
	}
}
