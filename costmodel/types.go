package costmodel

import (
	"errors"

	"github.com/haplograph/poalign/graph"
	"github.com/haplograph/poalign/phase"
)

// ErrBadCost indicates a negative or otherwise invalid cost constant.
var ErrBadCost = errors.New("costmodel: cost constants must be non-negative")

// Successor is one candidate next state a Strategy proposes, ready for
// statetree.Tree to materialise and bucketqueue.Queue to schedule.
type Successor struct {
	NodeID     graph.NodeID
	Offset     uint32
	Phase      phase.Phase
	DeltaScore int // always >= 0; enqueued at bucket DeltaScore relative to the current score
}

// Strategy is the per-scoring-scheme rule set the aligner driver is
// polymorphic over. Cost constants are closed over the concrete Strategy
// value (affine or twoPieceAffine); the driver never sees them directly.
type Strategy interface {
	// Successors enumerates the next states reachable from (node, offset,
	// ph) by paying a score, per the §4.4 transition table. Matches are
	// never emitted here -- they are free and handled by the path
	// extender instead.
	Successors(g graph.AlignableGraph, query []byte, node graph.NodeID, offset uint32, ph phase.Phase) []Successor

	// ExtendCost returns the cheapest per-unit cost of covering one
	// position of length imbalance between query and graph, used as the
	// pruning lower bound in MinRemainingCost.
	ExtendCost() int

	// MinRemainingCost lower-bounds the score still needed to reach the
	// end, given minDistToExit (the node's hop distance to its nearest
	// enclosing superbubble exit, which every path to the end passes
	// through) and the number of query characters left to consume.
	MinRemainingCost(minDistToExit uint32, queryRemaining int) int
}

// Options configures cost constants shared by both schemes.
type Options struct {
	Mismatch int // x
	GapOpen  int // o
	GapExt   int // e

	// LongGapOpen/LongGapExt enable the two-piece affine scheme when either
	// is set to a value > 0 via WithTwoPiece; both zero means affine-only.
	LongGapOpen int // o2
	LongGapExt  int // e2
}

// Option is a functional option configuring Options.
type Option func(*Options)

// WithMismatch sets the substitution cost x.
func WithMismatch(x int) Option { return func(o *Options) { o.Mismatch = x } }

// WithGapAffine sets the single-piece gap-open/extend costs (o, e).
func WithGapAffine(open, ext int) Option {
	return func(o *Options) {
		o.GapOpen = open
		o.GapExt = ext
	}
}

// WithTwoPiece additionally sets the long-gap open/extend costs (o2, e2),
// selecting the two-piece affine scheme.
func WithTwoPiece(open2, ext2 int) Option {
	return func(o *Options) {
		o.LongGapOpen = open2
		o.LongGapExt = ext2
	}
}

// DefaultOptions returns zeroed Options; callers must set at least
// WithMismatch and WithGapAffine before building a Strategy.
func DefaultOptions() Options {
	return Options{}
}

// Validate reports ErrBadCost if any configured constant is negative.
func (o Options) Validate() error {
	if o.Mismatch < 0 || o.GapOpen < 0 || o.GapExt < 0 || o.LongGapOpen < 0 || o.LongGapExt < 0 {
		return ErrBadCost
	}

	return nil
}

// TwoPiece reports whether the two-piece long-gap constants were set.
func (o Options) TwoPiece() bool {
	return o.LongGapOpen > 0 || o.LongGapExt > 0
}
