package statetree

import (
	"github.com/haplograph/poalign/graph"
	"github.com/haplograph/poalign/phase"
)

// Ix is a dense arena index into a Tree. The zero value is a valid index
// (the first state ever added), so callers must track "no backtrace" with
// Backtrace being absent, never with a sentinel Ix.
type Ix uint32

// BacktraceKind distinguishes the two ways a state can point at its parent.
type BacktraceKind uint8

const (
	// Step is an ordinary transition recorded by the scoring strategy.
	Step BacktraceKind = iota
	// ClosedIndel points at the indel state this Match was materialised from.
	ClosedIndel
)

// Backtrace is a tagged parent pointer: either an ordinary Step or a
// ClosedIndel link back to the gap state that seeded this matchable state.
type Backtrace struct {
	Kind BacktraceKind
	Ix   Ix
}

// Node is one explored alignment state: a (graph node, query offset, phase)
// triple plus how it was reached.
type Node struct {
	NodeID  graph.NodeID
	Offset  uint32
	Phase   phase.Phase
	Parent  *Backtrace // nil only for Start states
}

// key is the uniqueness triple (node, offset, phase) the tree deduplicates on.
type key struct {
	node   graph.NodeID
	offset uint32
	phase  phase.Phase
}
