package bubble

import "github.com/haplograph/poalign/graph"

// Entry records the distance from some node to one enclosing bubble's exit.
type Entry struct {
	Exit       graph.NodeID
	DistToExit uint32
}

// Map is the node -> enclosing-bubble-distances index. A bubble records an
// entry for each interior node and for its entrance, never for its own
// exit, and every recorded distance is at least 1. A node with no entry
// lies outside every discovered bubble, or is only ever a bubble's exit.
type Map map[graph.NodeID][]Entry

// MinDistToExit returns the smallest DistToExit among n's entries, and
// whether n had any entry at all. When a node is enclosed by several nested
// bubbles, this is the distance to the nearest exit.
func (m Map) MinDistToExit(n graph.NodeID) (uint32, bool) {
	entries, ok := m[n]
	if !ok || len(entries) == 0 {
		return 0, false
	}
	best := entries[0].DistToExit
	for _, e := range entries[1:] {
		if e.DistToExit < best {
			best = e.DistToExit
		}
	}

	return best, true
}
