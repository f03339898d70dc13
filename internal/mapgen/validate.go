package mapgen

import (
	"fmt"
	"slices"

	"github.com/osse101/GielinorRush_Go/internal/domain"
)

// Validate checks the structural invariants of a node graph: unique ids, a
// single START, resolvable references, synchronized location-group unlocks
// and reachability of every node from START.
func Validate(nodes []domain.Node) error {
	byID := make(map[string]*domain.Node, len(nodes))
	var start string
	for i := range nodes {
		n := &nodes[i]
		if _, dup := byID[n.NodeID]; dup {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateNodeID, n.NodeID)
		}
		byID[n.NodeID] = n
		if n.NodeType == domain.NodeTypeStart {
			if start != "" {
				return fmt.Errorf("%w: more than one START node", domain.ErrInvalidMap)
			}
			start = n.NodeID
		}
	}
	if start == "" {
		return fmt.Errorf("%w: no START node", domain.ErrInvalidMap)
	}

	groups := map[string][]string{}
	for _, n := range nodes {
		for _, ref := range append(slices.Clone(n.Prerequisites), n.Unlocks...) {
			if _, ok := byID[ref]; !ok {
				return fmt.Errorf("%w: %s references unknown node %s", domain.ErrInvalidMap, n.NodeID, ref)
			}
		}
		if n.LocationGroupID != nil {
			groups[*n.LocationGroupID] = append(groups[*n.LocationGroupID], n.NodeID)
		}
	}

	for gid, members := range groups {
		want := sortedCopy(byID[members[0]].Unlocks)
		for _, id := range members[1:] {
			if !slices.Equal(want, sortedCopy(byID[id].Unlocks)) {
				return fmt.Errorf("%w: location group %s has unsynchronized unlocks", domain.ErrInvalidMap, gid)
			}
		}
	}

	seen := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range byID[id].Unlocks {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	if len(seen) != len(nodes) {
		for _, n := range nodes {
			if !seen[n.NodeID] {
				return fmt.Errorf("%w: node %s is unreachable from START", domain.ErrInvalidMap, n.NodeID)
			}
		}
	}

	return nil
}

func sortedCopy(ids []string) []string {
	out := slices.Clone(ids)
	slices.Sort(out)
	return out
}
