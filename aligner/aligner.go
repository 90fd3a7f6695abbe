package aligner

import (
	"fmt"

	"github.com/haplograph/poalign/backtrace"
	"github.com/haplograph/poalign/bucketqueue"
	"github.com/haplograph/poalign/costmodel"
	"github.com/haplograph/poalign/extender"
	"github.com/haplograph/poalign/graph"
	"github.com/haplograph/poalign/offset"
	"github.com/haplograph/poalign/phase"
	"github.com/haplograph/poalign/statetree"
)

// Aligner orchestrates one gap-affine (or two-piece affine) alignment
// engine: a bucket-queued Dijkstra-style search over (node, offset, phase)
// states, bound to a single costmodel.Strategy for the lifetime of the
// value. A single Aligner can drive many independent Align calls, each
// against its own fresh tree and queue.
type Aligner struct {
	strategy costmodel.Strategy
	options  Options
}

// New builds an Aligner bound to strategy. strategy is typically produced
// by costmodel.New.
func New(strategy costmodel.Strategy, opts ...Option) *Aligner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Aligner{strategy: strategy, options: cfg}
}

// Align computes the minimum-cost gap-affine alignment of query to some
// path in g, returning the cost and the forward-ordered Alignment.
func (a *Aligner) Align(g graph.AlignableGraph, query []byte) (int, backtrace.Alignment, error) {
	if err := offset.Validate[uint32](len(query)); err != nil {
		return 0, backtrace.Alignment{}, fmt.Errorf("aligner: %w", err)
	}

	starts := g.StartNodes()
	if len(starts) == 0 {
		return 0, backtrace.Alignment{}, ErrEmptyStartSet
	}

	r := &runner{
		g:        g,
		query:    query,
		strategy: a.strategy,
		options:  a.options,
		tree:     statetree.New(g, query, a.strategy),
		queue:    bucketqueue.New(),
	}
	for _, s := range starts {
		ix, isNew := r.tree.AddNode(statetree.Node{NodeID: s, Offset: 0, Phase: phase.Start})
		if isNew {
			r.queue.Enqueue(0, bucketqueue.Ix(ix))
		}
	}

	terminal, err := r.run()
	if err != nil {
		return 0, backtrace.Alignment{}, err
	}

	aln, err := backtrace.Build(r.tree, terminal)
	if err != nil {
		return 0, backtrace.Alignment{}, err
	}

	return r.score, aln, nil
}

// runner holds the mutable state for a single Align call.
type runner struct {
	g        graph.AlignableGraph
	query    []byte
	strategy costmodel.Strategy
	options  Options

	tree  *statetree.Tree
	queue *bucketqueue.Queue
	score int
}

// run drives the pop/close/extend/test/generate loop until a terminal
// state is found, the queue drains, or the score cap is exceeded.
func (r *runner) run() (statetree.Ix, error) {
	for {
		current := r.queue.PopCurrent()
		if len(current) == 0 {
			if r.queue.Empty() {
				return 0, ErrQueueDrained
			}
			r.score++
			r.queue.Advance()
			if r.capExceeded() {
				return 0, ErrScoreCapExceeded
			}

			continue
		}

		batch := make([]statetree.Ix, len(current))
		for i, c := range current {
			batch[i] = statetree.Ix(c)
		}
		batch = append(batch, r.tree.CloseIndelsFor(batch)...)

		if ix, ok := r.terminalAmong(batch); ok {
			return ix, nil
		}

		var extended []statetree.Ix
		for _, ix := range batch {
			if r.tree.GetNode(ix).Phase.IsMatchable() {
				extended = append(extended, extender.Extend(r.g, r.query, r.tree, ix)...)
			}
		}
		batch = append(batch, extended...)

		if ix, ok := r.terminalAmong(batch); ok {
			return ix, nil
		}

		for _, ix := range batch {
			r.generateNext(ix)
		}

		if r.options.DebugSink != nil {
			r.options.DebugSink.StateTreeSnapshot(r.score, r.tree.Len())
		}

		r.score++
		r.queue.Advance()
		if r.capExceeded() {
			return 0, ErrScoreCapExceeded
		}
	}
}

// terminalAmong reports the first batch member that is a {Start,Match,
// Mismatch} state at offset = len(query) sitting on a designated end node.
func (r *runner) terminalAmong(batch []statetree.Ix) (statetree.Ix, bool) {
	for _, ix := range batch {
		n := r.tree.GetNode(ix)
		if n.Phase.IsMatchable() && int(n.Offset) == len(r.query) && r.g.IsEnd(n.NodeID) {
			return ix, true
		}
	}

	return 0, false
}

func (r *runner) capExceeded() bool {
	return r.options.ScoreCap >= 0 && r.score > r.options.ScoreCap
}
