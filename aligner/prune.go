package aligner

import (
	"github.com/haplograph/poalign/bucketqueue"
	"github.com/haplograph/poalign/statetree"
)

// generateNext asks the bound strategy for ix's successors, as
// statetree.Tree.GenerateNext does, but additionally drops any successor
// that provably cannot reach an end state within options.ScoreCap: the
// resolved form of the pruning hook the bubble map exists to serve. With
// no cap, or no bubble map, this degrades to the tree's own GenerateNext.
func (r *runner) generateNext(ix statetree.Ix) {
	if r.options.ScoreCap < 0 || r.options.Bubbles == nil {
		r.tree.GenerateNext(r.queue, ix)

		return
	}

	n := r.tree.GetNode(ix)
	for _, succ := range r.strategy.Successors(r.g, r.query, n.NodeID, n.Offset, n.Phase) {
		queryRemaining := len(r.query) - int(succ.Offset)
		minDist, ok := r.options.Bubbles.MinDistToExit(succ.NodeID)
		if !ok {
			minDist = uint32(queryRemaining)
		}
		remaining := r.strategy.MinRemainingCost(minDist, queryRemaining)
		if r.score+succ.DeltaScore+remaining > r.options.ScoreCap {
			continue
		}

		child := statetree.Node{
			NodeID: succ.NodeID,
			Offset: succ.Offset,
			Phase:  succ.Phase,
			Parent: &statetree.Backtrace{Kind: statetree.Step, Ix: ix},
		}
		childIx, isNew := r.tree.AddNode(child)
		if isNew {
			r.queue.Enqueue(succ.DeltaScore, bucketqueue.Ix(childIx))
		}
	}
}
