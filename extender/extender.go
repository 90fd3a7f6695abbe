package extender

import (
	"github.com/haplograph/poalign/graph"
	"github.com/haplograph/poalign/phase"
	"github.com/haplograph/poalign/statetree"
)

// Extend walks forward from seed (which must be a Start/Match/Mismatch
// state) along every graph successor whose symbol equals the next query
// character, creating a Match child for each and recursing from it. It
// returns every newly created Match index, in depth-first order; states
// that would duplicate an existing (node, offset, Match) triple end that
// branch without being returned again.
//
// Extend never spends score: the caller is responsible for scheduling the
// returned indices into the same bucket the seed was popped from.
func Extend(g graph.AlignableGraph, query []byte, tree *statetree.Tree, seed statetree.Ix) []statetree.Ix {
	seedNode := tree.GetNode(seed)
	if !seedNode.Phase.IsMatchable() {
		return nil
	}

	var out []statetree.Ix
	walk(g, query, tree, seed, &out)

	return out
}

func walk(g graph.AlignableGraph, query []byte, tree *statetree.Tree, ix statetree.Ix, out *[]statetree.Ix) {
	n := tree.GetNode(ix)
	if int(n.Offset) >= len(query) {
		return
	}
	want := query[n.Offset]
	for _, s := range g.Successors(n.NodeID) {
		if g.Symbol(s) != want {
			continue
		}
		child := statetree.Node{
			NodeID: s,
			Offset: n.Offset + 1,
			Phase:  phase.Match,
			Parent: &statetree.Backtrace{Kind: statetree.Step, Ix: ix},
		}
		childIx, isNew := tree.AddNode(child)
		if !isNew {
			continue
		}
		*out = append(*out, childIx)
		walk(g, query, tree, childIx, out)
	}
}
