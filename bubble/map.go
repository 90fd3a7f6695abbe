package bubble

import (
	"github.com/haplograph/poalign/graph"
	"github.com/haplograph/poalign/superbubble"
)

// Build runs one backward BFS per superbubble pair, walking from each exit
// towards its entrance along Predecessors, and records the hop distance to
// the exit for every interior node (and the entrance itself) it visits.
// The walk never crosses past the entrance, so a bubble only contributes
// entries for nodes genuinely inside it.
func Build(g graph.AlignableGraph, pairs []superbubble.Pair) Map {
	m := make(Map)
	for _, p := range pairs {
		walkBubble(g, m, p)
	}

	return m
}

func walkBubble(g graph.AlignableGraph, m Map, p superbubble.Pair) {
	type frontierNode struct {
		id   graph.NodeID
		dist uint32
	}

	visited := map[graph.NodeID]struct{}{p.Exit: {}}
	queue := []frontierNode{{id: p.Exit, dist: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, pred := range g.Predecessors(cur.id) {
			if _, seen := visited[pred]; seen {
				continue
			}
			visited[pred] = struct{}{}
			d := cur.dist + 1
			m[pred] = append(m[pred], Entry{Exit: p.Exit, DistToExit: d})

			if pred == p.Entrance {
				continue // do not expand past the bubble's own entrance
			}
			queue = append(queue, frontierNode{id: pred, dist: d})
		}
	}
}
