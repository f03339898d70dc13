// Package progression evaluates team state transitions against a generated
// node graph. Every transition is pure: it returns a new team and leaves its
// input untouched when it fails.
package progression

import "github.com/osse101/GielinorRush_Go/internal/domain"

// Graph is a read-only index over an event's nodes.
type Graph struct {
	nodes     map[string]*domain.Node
	order     []string
	start     string
	unlockers map[string][]string
	rewards   map[string]rewardRef
}

type rewardRef struct {
	nodeID string
	index  int
}

// NewGraph indexes nodes. The slice is copied so later edits by the caller
// do not leak into the graph.
func NewGraph(nodes []domain.Node) *Graph {
	g := &Graph{
		nodes:     make(map[string]*domain.Node, len(nodes)),
		order:     make([]string, 0, len(nodes)),
		unlockers: make(map[string][]string),
		rewards:   make(map[string]rewardRef),
	}

	for i := range nodes {
		n := nodes[i]
		g.nodes[n.NodeID] = &n
		g.order = append(g.order, n.NodeID)

		if n.NodeType == domain.NodeTypeStart && g.start == "" {
			g.start = n.NodeID
		}
		for _, u := range n.Unlocks {
			g.unlockers[u] = append(g.unlockers[u], n.NodeID)
		}
		for j, r := range n.AvailableRewards {
			g.rewards[r.RewardID] = rewardRef{nodeID: n.NodeID, index: j}
		}
	}

	return g
}

// Node looks up a node by id.
func (g *Graph) Node(id string) (*domain.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// StartNodeID returns the START node, or "" for an empty graph.
func (g *Graph) StartNodeID() string {
	return g.start
}

func (g *Graph) Len() int {
	return len(g.order)
}

// Nodes returns the nodes in generation order.
func (g *Graph) Nodes() []domain.Node {
	out := make([]domain.Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}
	return out
}

// FindInnReward locates the inn offering rewardID.
func (g *Graph) FindInnReward(rewardID string) (*domain.Node, *domain.InnReward, bool) {
	ref, ok := g.rewards[rewardID]
	if !ok {
		return nil, nil, false
	}
	inn := g.nodes[ref.nodeID]
	return inn, &inn.AvailableRewards[ref.index], true
}

// UnlockedBy lists the nodes whose unlocks include id.
func (g *Graph) UnlockedBy(id string) []string {
	return g.unlockers[id]
}
