package aligner

import "errors"

// Sentinel errors surfaced by Align. All of them abort the call and leave
// no residual state; the tree and queue are simply dropped with the runner.
var (
	// ErrEmptyStartSet indicates G.StartNodes() returned no nodes.
	ErrEmptyStartSet = errors.New("aligner: graph has no start nodes")

	// ErrQueueDrained indicates the bucket queue emptied without any member
	// ever reaching a terminal state: G has no path from a start node to an
	// end node reachable under the configured scoring scheme.
	ErrQueueDrained = errors.New("aligner: queue drained before reaching an end state")

	// ErrScoreCapExceeded indicates the running score passed a host-imposed
	// WithScoreCap before a terminal state was found.
	ErrScoreCapExceeded = errors.New("aligner: score exceeded configured cap")
)
