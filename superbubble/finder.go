package superbubble

import (
	"github.com/haplograph/poalign/graph"
)

// Finder holds the reverse-postorder and dominator data computed once for
// a graph, so both the superbubble pairs and the node->bubble distance map
// (package bubble) can be built from the same traversal without repeating
// it.
type Finder struct {
	g     graph.AlignableGraph
	order []graph.NodeID       // reverse postorder: index 0 is the start node
	pos   map[graph.NodeID]int // NodeID -> index in order
	idom  map[graph.NodeID]graph.NodeID
	ipdom map[graph.NodeID]graph.NodeID
}

// New runs the reverse-postorder DFS and computes dominator/postdominator
// trees for g. Returns ErrCycleDetected if g is not acyclic.
func New(g graph.AlignableGraph) (*Finder, error) {
	order, err := reversePostorder(g)
	if err != nil {
		return nil, err
	}
	pos := make(map[graph.NodeID]int, len(order))
	for i, n := range order {
		pos[n] = i
	}

	f := &Finder{g: g, order: order, pos: pos}
	f.computeDominators()
	f.computePostdominators()

	return f, nil
}

// Order returns the computed reverse postorder (start-first topological order).
func (f *Finder) Order() []graph.NodeID {
	out := make([]graph.NodeID, len(f.order))
	copy(out, f.order)

	return out
}

// Pairs returns every (entrance, exit) superbubble found, in no particular
// order. Degenerate single-path bubbles (an entrance with exactly one
// successor chain to its exit) are included, matching the dominator/
// postdominator definition; callers that only want branching bubbles can
// filter on len(g.Successors(entrance)) > 1.
func (f *Finder) Pairs() []Pair {
	var pairs []Pair
	for _, v := range f.order {
		u, ok := f.idom[v]
		if !ok || u == v {
			continue
		}
		if ip, ok := f.ipdom[u]; ok && ip == v {
			pairs = append(pairs, Pair{Entrance: u, Exit: v})
		}
	}

	return pairs
}

// reversePostorder performs a colored DFS from every start node (falling
// back to any still-white node, to cover components unreachable from a
// declared start) and returns the reverse of the post-order sequence.
func reversePostorder(g graph.AlignableGraph) ([]graph.NodeID, error) {
	n := g.NodeCountWithStart()
	state := make(map[graph.NodeID]int, n)
	order := make([]graph.NodeID, 0, n)

	var visit func(v graph.NodeID) error
	visit = func(v graph.NodeID) error {
		switch state[v] {
		case gray:
			return ErrCycleDetected
		case black:
			return nil
		}
		state[v] = gray
		for _, s := range g.Successors(v) {
			if err := visit(s); err != nil {
				return err
			}
		}
		state[v] = black
		order = append(order, v)

		return nil
	}

	for _, s := range g.StartNodes() {
		if err := visit(s); err != nil {
			return nil, err
		}
	}
	for id := 0; id < n; id++ {
		v := graph.NodeID(id)
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// computeDominators fills f.idom by processing nodes in topological order
// (f.order) so every predecessor of v is resolved before v itself.
func (f *Finder) computeDominators() {
	dom := make(map[graph.NodeID]nodeSet, len(f.order))
	f.idom = make(map[graph.NodeID]graph.NodeID, len(f.order))

	for _, v := range f.order {
		preds := f.g.Predecessors(v)
		var d nodeSet
		if len(preds) == 0 {
			d = setOf(v)
		} else {
			d = dom[preds[0]].clone()
			for _, p := range preds[1:] {
				d = intersect(d, dom[p])
			}
			d[v] = struct{}{}
		}
		dom[v] = d
		f.idom[v], _ = nearest(d, v, f.pos, true)
	}
}

// computePostdominators fills f.ipdom by processing nodes in reverse
// topological order, merging every end node into the synthetic superEnd
// sentinel so graphs with multiple ends still get a single postdominator
// root.
func (f *Finder) computePostdominators() {
	pdom := make(map[graph.NodeID]nodeSet, len(f.order)+1)
	f.ipdom = make(map[graph.NodeID]graph.NodeID, len(f.order))
	posWithEnd := make(map[graph.NodeID]int, len(f.pos)+1)
	for k, v := range f.pos {
		posWithEnd[k] = v
	}
	posWithEnd[superEnd] = len(f.order)
	pdom[superEnd] = setOf(superEnd)

	for i := len(f.order) - 1; i >= 0; i-- {
		v := f.order[i]
		succs := f.g.Successors(v)
		if f.g.IsEnd(v) {
			succs = append(succs, superEnd)
		}
		var d nodeSet
		if len(succs) == 0 {
			d = setOf(v)
		} else {
			d = pdom[succs[0]].clone()
			for _, s := range succs[1:] {
				d = intersect(d, pdom[s])
			}
			d[v] = struct{}{}
		}
		pdom[v] = d
		ip, ok := nearest(d, v, posWithEnd, false)
		if ok {
			f.ipdom[v] = ip
		}
	}
}

// nearest picks, from set minus self, the element with the max (forward=true)
// or min (forward=false) position -- the immediate dominator is the
// topologically-latest other dominator; the immediate postdominator is the
// topologically-earliest other postdominator.
func nearest(set nodeSet, self graph.NodeID, pos map[graph.NodeID]int, forward bool) (graph.NodeID, bool) {
	var (
		best    graph.NodeID
		bestPos int
		found   bool
	)
	for id := range set {
		if id == self {
			continue
		}
		p := pos[id]
		if !found || (forward && p > bestPos) || (!forward && p < bestPos) {
			best, bestPos, found = id, p, true
		}
	}

	return best, found
}
