package backtrace

import (
	"github.com/haplograph/poalign/graph"
	"github.com/haplograph/poalign/phase"
	"github.com/haplograph/poalign/statetree"
)

// Build walks tree's parent pointers from terminal back to a Start state,
// emitting one AlignedPair per Step transition (ClosedIndel steps emit
// nothing themselves; the underlying indel they close over emits in their
// place), and returns the result in forward order.
func Build(tree *statetree.Tree, terminal statetree.Ix) (Alignment, error) {
	var reversed []AlignedPair

	ix := terminal
	for {
		n := tree.GetNode(ix)

		switch n.Phase {
		case phase.Start:
			reverseInPlace(reversed)

			return Alignment{Pairs: reversed}, nil

		case phase.Match, phase.Mismatch:
			if n.Parent == nil {
				return Alignment{}, ErrBadBacktrace
			}
			if n.Parent.Kind == statetree.Step {
				node := n.NodeID
				qpos := n.Offset - 1
				reversed = append(reversed, AlignedPair{RPos: &node, QPos: &qpos})
			}
			// ClosedIndel: emit nothing, continue from the indel it closed.
			ix = n.Parent.Ix

		case phase.Insertion:
			if n.Parent == nil {
				return Alignment{}, ErrBadBacktrace
			}
			qpos := n.Offset - 1
			reversed = append(reversed, AlignedPair{QPos: &qpos})
			ix = n.Parent.Ix

		case phase.Deletion:
			if n.Parent == nil {
				return Alignment{}, ErrBadBacktrace
			}
			node := n.NodeID
			reversed = append(reversed, AlignedPair{RPos: &node})
			ix = n.Parent.Ix

		// Insertion2/Deletion2 never legitimately reach the backtrace chain:
		// a long-gap piece always closes back into a Match state before
		// anything downstream of it is walked, so seeing one here means the
		// tree is corrupt.
		case phase.Insertion2, phase.Deletion2:
			return Alignment{}, ErrBadBacktrace

		default:
			return Alignment{}, ErrBadBacktrace
		}
	}
}

func reverseInPlace(pairs []AlignedPair) {
	for i, j := 0, len(pairs)-1; i < j; i, j = i+1, j-1 {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	}
}

// RNode returns p.RPos dereferenced and whether it was present, for callers
// that would rather not juggle pointers directly.
func (p AlignedPair) RNode() (graph.NodeID, bool) {
	if p.RPos == nil {
		return 0, false
	}

	return *p.RPos, true
}

// QOffset returns p.QPos dereferenced and whether it was present.
func (p AlignedPair) QOffset() (uint32, bool) {
	if p.QPos == nil {
		return 0, false
	}

	return *p.QPos, true
}
