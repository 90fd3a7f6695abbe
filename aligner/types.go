package aligner

import (
	"github.com/haplograph/poalign/bubble"
	"github.com/haplograph/poalign/tracesink"
)

// Options configures one Aligner, using the same functional-options
// convention as costmodel.Option.
type Options struct {
	// ScoreCap, if >= 0, bounds the score the driver will explore to. A
	// negative value (the default) means unlimited.
	ScoreCap int

	// Bubbles, when set alongside ScoreCap, lets the driver discard
	// successors that provably cannot finish within the cap.
	Bubbles bubble.Map

	// DebugSink, when set, receives a StateTreeSnapshot once for each score
	// whose bucket held states; scores skipped over an empty bucket emit
	// nothing.
	DebugSink tracesink.Sink
}

// Option is a functional option configuring Options.
type Option func(*Options)

// WithScoreCap bounds the score the driver will explore to before giving
// up with ErrScoreCapExceeded. Combine with WithBubbleMap to let the
// driver prune doomed branches instead of merely failing late.
func WithScoreCap(n int) Option {
	return func(o *Options) { o.ScoreCap = n }
}

// WithBubbleMap supplies a precomputed node->bubble distance map, enabling
// the pruning check described in WithScoreCap.
func WithBubbleMap(m bubble.Map) Option {
	return func(o *Options) { o.Bubbles = m }
}

// WithDebugSink attaches a diagnostic sink.
func WithDebugSink(s tracesink.Sink) Option {
	return func(o *Options) { o.DebugSink = s }
}

// DefaultOptions returns an Options with no cap, no bubble map and no sink.
func DefaultOptions() Options {
	return Options{ScoreCap: -1}
}
