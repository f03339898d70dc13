// Package mapgen sizes a Gielinor Rush event and procedurally generates its
// node graph.
package mapgen

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/objective"
)

const (
	nodesPerGroup = 3

	// MinTotalNodes fits START, one group per path and the treasure.
	MinTotalNodes = 2 + nodesPerGroup*3
)

// Generator builds maps. All per-run state lives here so a Generator is
// never shared between goroutines; create one per generation.
type Generator struct {
	rng      *rand.Rand
	now      func() time.Time
	formatID func(prefix string, n int) string

	cfg        domain.EventConfig
	derived    domain.DerivedValues
	objectives objective.FormattedObjectives

	prefix        string
	counter       int
	groupCounter  int
	innCount      int
	remaining     int
	emitted       map[string]struct{}
	usedLocations map[string]struct{}

	nodes  []domain.Node
	index  map[string]int
	edges  []domain.MapEdge
	groups []domain.LocationGroup
}

// NewGenerator returns a generator seeded with seed. A nil clock uses time.Now.
func NewGenerator(seed int64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	//nolint:gosec // G404: math/rand is fine for map layout, nothing here is secret
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		now:      now,
		formatID: defaultNodeID,
	}
}

func defaultNodeID(prefix string, n int) string {
	return fmt.Sprintf("%s_node_%d", prefix, n)
}

// Generate builds a complete map for cfg. The returned map always has exactly
// derived.TotalNodes nodes.
func (g *Generator) Generate(cfg domain.EventConfig, derived domain.DerivedValues, sel *domain.ContentSelections) (*domain.GeneratedMap, error) {
	cfg = WithDefaults(cfg)
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if derived.TotalNodes < MinTotalNodes {
		return nil, fmt.Errorf("%w: a map needs at least %d nodes, this event sizes to %d",
			domain.ErrInvalidEventConfig, MinTotalNodes, derived.TotalNodes)
	}

	g.reset(cfg, derived, sel)

	start, err := g.addStart()
	if err != nil {
		return nil, err
	}
	// START and TREASURE are reserved
	g.remaining = derived.TotalNodes - 2

	heads := make([]string, len(paths))
	for p := range paths {
		if heads[p], err = g.addGroup(p, start); err != nil {
			return nil, err
		}
	}
	countdown := cfg.NodeToInnRatio - nodesPerGroup*len(paths)

	for p := 0; g.remaining > 0; p = (p + 1) % len(paths) {
		switch {
		case g.remaining < nodesPerGroup:
			inn, err := g.addInn(heads)
			if err != nil {
				return nil, err
			}
			for i := range heads {
				heads[i] = inn
			}

		case countdown <= 0:
			inn, err := g.addInn(heads)
			if err != nil {
				return nil, err
			}
			countdown = cfg.NodeToInnRatio
			for i := range paths {
				if g.remaining < nodesPerGroup {
					heads[i] = inn
					continue
				}
				if heads[i], err = g.addGroup(i, inn); err != nil {
					return nil, err
				}
				countdown -= nodesPerGroup
			}

		default:
			if heads[p], err = g.addGroup(p, heads[p]); err != nil {
				return nil, err
			}
			countdown -= nodesPerGroup
		}
	}

	if _, err := g.addTreasure(heads); err != nil {
		return nil, err
	}

	g.assignBuffs()
	g.syncUnlocks()

	if err := Validate(g.nodes); err != nil {
		return nil, err
	}

	return &domain.GeneratedMap{
		MapStructure: domain.MapStructure{
			StartNode:      start,
			Paths:          append([]domain.PathInfo(nil), paths...),
			Edges:          g.edges,
			LocationGroups: g.groups,
		},
		Nodes: g.nodes,
	}, nil
}

func (g *Generator) reset(cfg domain.EventConfig, derived domain.DerivedValues, sel *domain.ContentSelections) {
	g.cfg = cfg
	g.derived = derived
	g.objectives = objective.BuildFormattedObjectives(sel)
	g.prefix = "evt_" + strconv.FormatInt(g.now().UnixMilli(), 36)
	g.counter = 0
	g.groupCounter = 0
	g.innCount = 0
	g.emitted = make(map[string]struct{}, derived.TotalNodes)
	g.usedLocations = make(map[string]struct{})
	g.nodes = make([]domain.Node, 0, derived.TotalNodes)
	g.index = make(map[string]int, derived.TotalNodes)
	g.edges = nil
	g.groups = nil
}

func (g *Generator) nextID() (string, error) {
	g.counter++
	id := g.formatID(g.prefix, g.counter)
	if _, dup := g.emitted[id]; dup {
		return "", fmt.Errorf("%w: %s", domain.ErrDuplicateNodeID, id)
	}
	g.emitted[id] = struct{}{}
	return id, nil
}

func (g *Generator) pickLocation() Location {
	free := make([]Location, 0, len(locations))
	for _, loc := range locations {
		if _, used := g.usedLocations[loc.Name]; !used {
			free = append(free, loc)
		}
	}
	if len(free) == 0 {
		// large maps revisit locations once every one has been used
		g.usedLocations = make(map[string]struct{})
		free = locations
	}
	loc := free[g.rng.Intn(len(free))]
	g.usedLocations[loc.Name] = struct{}{}
	return loc
}

func (g *Generator) push(n domain.Node) {
	if n.Prerequisites == nil {
		n.Prerequisites = []string{}
	}
	n.Unlocks = []string{}
	g.index[n.NodeID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

func (g *Generator) connect(from, to string) {
	g.edges = append(g.edges, domain.MapEdge{From: from, To: to})
}

func (g *Generator) addStart() (string, error) {
	id, err := g.nextID()
	if err != nil {
		return "", err
	}
	loc := g.pickLocation()
	g.push(domain.Node{
		NodeID:      id,
		NodeType:    domain.NodeTypeStart,
		Coordinates: domain.Coordinates{X: loc.X, Y: loc.Y},
		MapLocation: loc.Name,
	})
	return id, nil
}

// addGroup appends three tiered nodes at one location rooted at parent and
// returns the tier-1 node, the new head of the path.
func (g *Generator) addGroup(p int, parent string) (string, error) {
	path := paths[p]
	loc := g.pickLocation()
	g.groupCounter++
	groupID := fmt.Sprintf("%s_loc_%d", g.prefix, g.groupCounter)

	group := domain.LocationGroup{GroupID: groupID, Location: loc.Name, Path: path.Name}
	for _, tier := range groupTiers {
		id, err := g.nextID()
		if err != nil {
			return "", err
		}
		obj, err := g.drawObjective(tier)
		if err != nil {
			return "", err
		}

		gid, t := groupID, tier
		g.push(domain.Node{
			NodeID:          id,
			NodeType:        domain.NodeTypeStandard,
			Path:            path.Name,
			LocationGroupID: &gid,
			Coordinates:     domain.Coordinates{X: loc.X, Y: loc.Y},
			MapLocation:     loc.Name,
			Prerequisites:   []string{parent},
			Objective:       obj,
			Rewards:         g.standardRewards(path.KeyColor, tier),
			DifficultyTier:  &t,
		})
		g.connect(parent, id)
		group.NodeIDs = append(group.NodeIDs, id)
	}

	g.groups = append(g.groups, group)
	g.remaining -= nodesPerGroup
	return group.NodeIDs[0], nil
}

func (g *Generator) addInn(heads []string) (string, error) {
	id, err := g.nextID()
	if err != nil {
		return "", err
	}
	loc := g.pickLocation()
	g.innCount++
	tier := g.innCount

	prereqs := unique(heads)
	g.push(domain.Node{
		NodeID:           id,
		NodeType:         domain.NodeTypeInn,
		Coordinates:      domain.Coordinates{X: loc.X, Y: loc.Y},
		MapLocation:      loc.Name,
		Prerequisites:    prereqs,
		InnTier:          &tier,
		AvailableRewards: g.innMenu(id, tier),
	})
	for _, h := range prereqs {
		g.connect(h, id)
	}
	g.remaining--
	return id, nil
}

func (g *Generator) addTreasure(heads []string) (string, error) {
	id, err := g.nextID()
	if err != nil {
		return "", err
	}
	loc := g.pickLocation()

	// the treasure keeps a hard objective when one exists, otherwise it is claimed on arrival
	obj, objErr := g.drawObjective(groupTiers[len(groupTiers)-1])
	if objErr != nil {
		obj = nil
	}

	prereqs := unique(heads)
	g.push(domain.Node{
		NodeID:        id,
		NodeType:      domain.NodeTypeTreasure,
		Coordinates:   domain.Coordinates{X: loc.X, Y: loc.Y},
		MapLocation:   loc.Name,
		Prerequisites: prereqs,
		Objective:     obj,
		Rewards: &domain.Rewards{
			GP:   g.derived.AvgGPPerNode.MulInt(2),
			Keys: []domain.KeyAmount{},
		},
	})
	for _, h := range prereqs {
		g.connect(h, id)
	}
	return id, nil
}

func (g *Generator) drawObjective(tier int) (*domain.Objective, error) {
	bucket := tierBucket(tier)
	types := g.objectives.TypesFor(bucket)
	if len(types) == 0 {
		return nil, &domain.NoObjectiveAvailableError{Difficulty: bucket}
	}

	t := types[g.rng.Intn(len(types))]
	cands := g.objectives[t][bucket]
	c := cands[g.rng.Intn(len(cands))]

	qty := c.Quantity
	if !c.Custom {
		qty = scaleQuantity(qty, g.cfg.Difficulty)
	}

	return &domain.Objective{
		Type:      t,
		Target:    c.Target,
		Quantity:  qty,
		ContentID: c.ContentID,
	}, nil
}

func (g *Generator) standardRewards(color domain.KeyColor, tier int) *domain.Rewards {
	keys := 1
	if tier == 5 {
		keys = 2
	}
	return &domain.Rewards{
		GP:   g.derived.AvgGPPerNode.MulFrac(tierGPPercent[tier], 100),
		Keys: []domain.KeyAmount{{Color: color, Quantity: keys}},
	}
}

var titleCase = cases.Title(language.English)

// innMenu builds 2-3 key trades. Payouts grow 10% with each inn tier.
func (g *Generator) innMenu(innID string, innTier int) []domain.InnReward {
	base := g.derived.AvgGPPerNode.MulInt(int64(g.cfg.NodeToInnRatio))
	growth := int64(100 + 10*(innTier-1))
	color := paths[g.rng.Intn(len(paths))].KeyColor

	menu := []domain.InnReward{
		{
			Name:        "Traveller's Purse",
			Description: "Trade any two keys for a small purse of coins",
			KeyCost:     []domain.KeyAmount{{Color: domain.KeyAny, Quantity: 2}},
			Payout:      base.MulFrac(60*growth, 10000),
		},
		{
			Name:        titleCase.String(string(color)) + " Cache",
			Description: fmt.Sprintf("Trade three %s keys for a cache of coins", color),
			KeyCost:     []domain.KeyAmount{{Color: color, Quantity: 3}},
			Payout:      base.MulFrac(growth, 100),
		},
	}
	if g.rng.Intn(2) == 0 {
		menu = append(menu, domain.InnReward{
			Name:        "Grand Tour Chest",
			Description: "Trade one key of every color for the inn's best chest",
			KeyCost: []domain.KeyAmount{
				{Color: domain.KeyRed, Quantity: 1},
				{Color: domain.KeyBlue, Quantity: 1},
				{Color: domain.KeyGreen, Quantity: 1},
			},
			Payout: base.MulFrac(150*growth, 10000),
		})
	}

	for i := range menu {
		menu[i].RewardID = fmt.Sprintf("%s_reward_%d", innID, i+1)
	}
	return menu
}

// syncUnlocks derives unlocks from edges and gives every node of a location
// group the union of the group's unlocks.
func (g *Generator) syncUnlocks() {
	for _, e := range g.edges {
		n := &g.nodes[g.index[e.From]]
		n.Unlocks = appendUnique(n.Unlocks, e.To)
	}

	for _, group := range g.groups {
		var union []string
		for _, id := range group.NodeIDs {
			for _, u := range g.nodes[g.index[id]].Unlocks {
				union = appendUnique(union, u)
			}
		}
		for _, id := range group.NodeIDs {
			g.nodes[g.index[id]].Unlocks = append([]string{}, union...)
		}
	}
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func unique(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = appendUnique(out, id)
	}
	return out
}
