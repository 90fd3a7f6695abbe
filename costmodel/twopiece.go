package costmodel

import (
	"github.com/haplograph/poalign/graph"
	"github.com/haplograph/poalign/phase"
)

// twoPieceAffine implements the convex-approximation two-piece scheme:
// a gap of length l costs min(o+l*e, o2+l*e2), modelled as two independent
// gap pieces racing each other through the bucket queue -- whichever piece
// reaches the closing Match first, wins, exactly as Dijkstra already
// guarantees the cheapest of several competing paths is settled first.
type twoPieceAffine struct {
	cfg Options
}

func (t *twoPieceAffine) ExtendCost() int {
	return min(t.cfg.GapExt, t.cfg.LongGapExt)
}

func (t *twoPieceAffine) MinRemainingCost(minDistToExit uint32, queryRemaining int) int {
	return minRemainingAffine(int(minDistToExit), queryRemaining, t.ExtendCost())
}

func (t *twoPieceAffine) Successors(g graph.AlignableGraph, query []byte, node graph.NodeID, off uint32, ph phase.Phase) []Successor {
	var out []Successor
	if ph.IsMatchable() {
		out = append(out, mismatchSuccessors(g, query, node, off, t.cfg.Mismatch)...)
		out = append(out, openInsertion(query, node, off, t.cfg.GapOpen+t.cfg.GapExt, phase.Insertion)...)
		out = append(out, openDeletion(g, node, off, t.cfg.GapOpen+t.cfg.GapExt, phase.Deletion)...)
		out = append(out, openInsertion(query, node, off, t.cfg.LongGapOpen+t.cfg.LongGapExt, phase.Insertion2)...)
		out = append(out, openDeletion(g, node, off, t.cfg.LongGapOpen+t.cfg.LongGapExt, phase.Deletion2)...)
	}
	switch ph {
	case phase.Insertion:
		out = append(out, extendInsertion(query, node, off, t.cfg.GapExt, phase.Insertion)...)
	case phase.Insertion2:
		out = append(out, extendInsertion(query, node, off, t.cfg.LongGapExt, phase.Insertion2)...)
	case phase.Deletion:
		out = append(out, extendDeletion(g, node, off, t.cfg.GapExt, phase.Deletion)...)
	case phase.Deletion2:
		out = append(out, extendDeletion(g, node, off, t.cfg.LongGapExt, phase.Deletion2)...)
	}

	return out
}
