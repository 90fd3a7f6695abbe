// Package phase defines the closed set of alignment-state tags the state
// tree, scoring strategies, and backtrace builder all switch over.
package phase

// Phase tags an alignment state with the kind of transition that produced
// it. The set is closed: {Start, Match, Mismatch, Insertion, Insertion2,
// Deletion, Deletion2}. Discriminants are dense so (node, offset, Phase)
// hashes and compares cheaply as a map key.
type Phase int8

const (
	// Start is the virtual origin; offset is always 0.
	Start Phase = iota

	// Match: aligned to a real graph node whose symbol equals Q[offset-1],
	// or the matchable companion statetree.CloseIndelsFor materialises at
	// an indel state's (node, offset), whatever that node's symbol.
	Match

	// Mismatch: aligned to a real graph node whose symbol differs from Q[offset-1].
	Mismatch

	// Insertion: gap in the graph; query advances, graph does not (short-gap piece).
	Insertion

	// Insertion2: long-gap piece of a two-piece affine insertion.
	Insertion2

	// Deletion: gap in the query; graph advances, query does not (short-gap piece).
	Deletion

	// Deletion2: long-gap piece of a two-piece affine deletion.
	Deletion2
)

// String renders the phase for diagnostics and test failure messages.
func (p Phase) String() string {
	switch p {
	case Start:
		return "Start"
	case Match:
		return "Match"
	case Mismatch:
		return "Mismatch"
	case Insertion:
		return "Insertion"
	case Insertion2:
		return "Insertion2"
	case Deletion:
		return "Deletion"
	case Deletion2:
		return "Deletion2"
	default:
		return "Phase(?)"
	}
}

// IsMatchable reports whether p is one of {Start, Match, Mismatch}: the set
// of phases the path extender and the indel-closer may resume from.
func (p Phase) IsMatchable() bool {
	return p == Start || p == Match || p == Mismatch
}

// IsIndel reports whether p is a gap phase (any of the four Insertion*/Deletion* tags).
func (p Phase) IsIndel() bool {
	switch p {
	case Insertion, Insertion2, Deletion, Deletion2:
		return true
	default:
		return false
	}
}
