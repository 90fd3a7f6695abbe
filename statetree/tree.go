package statetree

import (
	"fmt"

	"github.com/haplograph/poalign/bucketqueue"
	"github.com/haplograph/poalign/costmodel"
	"github.com/haplograph/poalign/graph"
	"github.com/haplograph/poalign/phase"
)

// Tree is the append-only arena of explored alignment states for one Align
// call. It owns the graph/query/strategy references needed to generate
// successors, so callers only ever pass it an Ix.
type Tree struct {
	g        graph.AlignableGraph
	query    []byte
	strategy costmodel.Strategy

	nodes []Node
	index map[key]Ix
}

// New creates an empty Tree bound to g, query and strategy for the
// lifetime of a single Align call.
func New(g graph.AlignableGraph, query []byte, strategy costmodel.Strategy) *Tree {
	return &Tree{
		g:        g,
		query:    query,
		strategy: strategy,
		index:    make(map[key]Ix),
	}
}

// AddNode inserts n, or returns the existing Ix if (NodeID, Offset, Phase)
// is already present. The bool result reports whether n was newly
// inserted; callers use it to decide whether to enqueue the state at all,
// since a duplicate was already scheduled (or processed) earlier at an
// equal or lower score.
func (t *Tree) AddNode(n Node) (Ix, bool) {
	k := key{node: n.NodeID, offset: n.Offset, phase: n.Phase}
	if ix, ok := t.index[k]; ok {
		return ix, false
	}
	ix := Ix(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.index[k] = ix

	return ix, true
}

// GetNode returns a pointer to the stored Node at ix. Panics if ix is out
// of range: every Ix in circulation was handed out by AddNode on this same
// Tree, so an out-of-range value indicates a bug upstream.
func (t *Tree) GetNode(ix Ix) *Node {
	if int(ix) >= len(t.nodes) {
		panic(fmt.Sprintf("statetree: index %d out of range (len=%d)", ix, len(t.nodes)))
	}

	return &t.nodes[ix]
}

// Len reports how many states have been materialised so far.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// CloseIndelsFor materialises, for every indel state in batch, a matchable
// companion Match state at the same (node, offset) linked via ClosedIndel,
// unless that triple is already present. Returns the indices of newly
// created companions only.
func (t *Tree) CloseIndelsFor(batch []Ix) []Ix {
	var created []Ix
	for _, ix := range batch {
		n := t.GetNode(ix)
		if !n.Phase.IsIndel() {
			continue
		}
		companion := Node{
			NodeID: n.NodeID,
			Offset: n.Offset,
			Phase:  phase.Match,
			Parent: &Backtrace{Kind: ClosedIndel, Ix: ix},
		}
		newIx, isNew := t.AddNode(companion)
		if isNew {
			created = append(created, newIx)
		}
	}

	return created
}

// GenerateNext asks the bound Strategy for ix's successors and enqueues
// every genuinely new one into q at its prescribed score offset.
func (t *Tree) GenerateNext(q *bucketqueue.Queue, ix Ix) {
	n := t.GetNode(ix)
	for _, succ := range t.strategy.Successors(t.g, t.query, n.NodeID, n.Offset, n.Phase) {
		child := Node{
			NodeID: succ.NodeID,
			Offset: succ.Offset,
			Phase:  succ.Phase,
			Parent: &Backtrace{Kind: Step, Ix: ix},
		}
		childIx, isNew := t.AddNode(child)
		if isNew {
			q.Enqueue(succ.DeltaScore, bucketqueue.Ix(childIx))
		}
	}
}
