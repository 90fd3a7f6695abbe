package superbubble

import (
	"errors"

	"github.com/haplograph/poalign/graph"
)

// ErrCycleDetected is returned when the graph is not acyclic; superbubbles
// are only defined for DAGs.
var ErrCycleDetected = errors.New("superbubble: cycle detected")

// Pair is one superbubble's (entrance, exit) boundary.
type Pair struct {
	Entrance graph.NodeID
	Exit     graph.NodeID
}

// superEnd is a sentinel NodeID used internally to merge multiple real end
// nodes into a single postdominator root. Real DAG node IDs start at 0
// (the virtual start) and increase, so a negative value can never collide.
const superEnd graph.NodeID = -1

// vertex coloring states for the reverse-postorder DFS.
const (
	white = 0
	gray  = 1
	black = 2
)

// nodeSet is a small set of NodeID used for dominator/postdominator
// frontiers. Plain maps are adequate at the module's intended graph sizes;
// see DESIGN.md for the complexity trade this implies.
type nodeSet map[graph.NodeID]struct{}

func setOf(ids ...graph.NodeID) nodeSet {
	s := make(nodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

func (s nodeSet) clone() nodeSet {
	out := make(nodeSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// intersect returns the set of ids present in both a and b.
func intersect(a, b nodeSet) nodeSet {
	out := make(nodeSet)
	for id := range a {
		if _, ok := b[id]; ok {
			out[id] = struct{}{}
		}
	}

	return out
}
