package graph

import "errors"

// Sentinel errors for DAG construction and mutation.
var (
	// ErrUnknownNode indicates an operation referenced a NodeID absent from the graph.
	ErrUnknownNode = errors.New("graph: node not found")

	// ErrCycle indicates AddEdge would close a cycle; AlignableGraph implementations
	// must stay acyclic, since the aligner assumes a topological / score-monotone
	// exploration order.
	ErrCycle = errors.New("graph: edge would introduce a cycle")
)
