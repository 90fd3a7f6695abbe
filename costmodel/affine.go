package costmodel

import (
	"github.com/haplograph/poalign/graph"
	"github.com/haplograph/poalign/phase"
)

// New builds a Strategy from opts: single-piece gap-affine unless
// WithTwoPiece was used, in which case the returned Strategy also emits
// Insertion2/Deletion2 successors. Returns ErrBadCost for negative
// constants.
func New(opts ...Option) (Strategy, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.TwoPiece() {
		return &twoPieceAffine{cfg}, nil
	}

	return &affine{cfg}, nil
}

// affine implements single-piece gap-affine scoring: a gap of length l
// costs o + l*e.
type affine struct {
	cfg Options
}

func (a *affine) ExtendCost() int {
	return a.cfg.GapExt
}

func (a *affine) MinRemainingCost(minDistToExit uint32, queryRemaining int) int {
	return minRemainingAffine(int(minDistToExit), queryRemaining, a.cfg.GapExt)
}

func (a *affine) Successors(g graph.AlignableGraph, query []byte, node graph.NodeID, off uint32, ph phase.Phase) []Successor {
	var out []Successor
	if ph.IsMatchable() {
		out = append(out, mismatchSuccessors(g, query, node, off, a.cfg.Mismatch)...)
		out = append(out, openInsertion(query, node, off, a.cfg.GapOpen+a.cfg.GapExt, phase.Insertion)...)
		out = append(out, openDeletion(g, node, off, a.cfg.GapOpen+a.cfg.GapExt, phase.Deletion)...)
	}
	switch ph {
	case phase.Insertion:
		out = append(out, extendInsertion(query, node, off, a.cfg.GapExt, phase.Insertion)...)
	case phase.Deletion:
		out = append(out, extendDeletion(g, node, off, a.cfg.GapExt, phase.Deletion)...)
	}

	return out
}

// minRemainingAffine lower-bounds remaining score by the number of graph
// positions that must be deleted: when the shortest remaining graph
// distance exceeds what's left of the query, each surplus position costs
// at least the cheapest gap extend (mismatches never help cover a length
// imbalance). When the query is at least as long, the graph may continue
// past the exit to absorb it, so the bound is zero.
func minRemainingAffine(minDistToExit, queryRemaining, extCost int) int {
	surplus := minDistToExit - queryRemaining
	if surplus < 0 {
		return 0
	}

	return surplus * extCost
}

// mismatchSuccessors emits a Mismatch successor for every graph successor
// of node whose symbol differs from query[off], provided off is still
// within the query.
func mismatchSuccessors(g graph.AlignableGraph, query []byte, node graph.NodeID, off uint32, cost int) []Successor {
	if int(off) >= len(query) {
		return nil
	}
	want := query[off]
	var out []Successor
	for _, s := range g.Successors(node) {
		if g.Symbol(s) != want {
			out = append(out, Successor{NodeID: s, Offset: off + 1, Phase: phase.Mismatch, DeltaScore: cost})
		}
	}

	return out
}

// openInsertion/extendInsertion keep the graph node fixed and advance offset.
func openInsertion(query []byte, node graph.NodeID, off uint32, cost int, ph phase.Phase) []Successor {
	if int(off) >= len(query) {
		return nil
	}

	return []Successor{{NodeID: node, Offset: off + 1, Phase: ph, DeltaScore: cost}}
}

func extendInsertion(query []byte, node graph.NodeID, off uint32, cost int, ph phase.Phase) []Successor {
	return openInsertion(query, node, off, cost, ph)
}

// openDeletion/extendDeletion advance the graph node and keep offset fixed.
func openDeletion(g graph.AlignableGraph, node graph.NodeID, off uint32, cost int, ph phase.Phase) []Successor {
	succs := g.Successors(node)
	out := make([]Successor, 0, len(succs))
	for _, s := range succs {
		out = append(out, Successor{NodeID: s, Offset: off, Phase: ph, DeltaScore: cost})
	}

	return out
}

func extendDeletion(g graph.AlignableGraph, node graph.NodeID, off uint32, cost int, ph phase.Phase) []Successor {
	return openDeletion(g, node, off, cost, ph)
}
