// Package poalign performs gap-affine sequence-to-graph alignment against
// a partial-order (POA-style) directed acyclic graph: given a query
// sequence and an AlignableGraph whose nodes carry single characters, it
// computes a minimum-cost alignment of the query to some path in the graph
// under a gap-affine or two-piece affine scoring scheme, together with the
// optimal cost.
//
// The engine is a Dijkstra-style exploration over (node, offset, phase)
// states:
//
//	graph/       — AlignableGraph contract and a concrete thread-safe DAG
//	offset/      — generic bound on the query-offset integer type
//	phase/       — the closed set of alignment-state tags
//	statetree/   — append-only arena of explored states, deduplicated and backtraced
//	bucketqueue/ — score-bucketed FIFO driving the search in increasing-cost order
//	extender/    — greedy zero-cost walk along matching graph symbols
//	costmodel/   — gap-affine and two-piece affine scoring strategies
//	superbubble/ — nested entrance/exit pairing via dominator/postdominator trees
//	bubble/      — per-node distance-to-bubble-exit map, used to prune doomed states
//	aligner/     — the driver tying the above together
//	backtrace/   — walks a terminal state's parents into a forward Alignment
//	tracesink/   — optional zap-backed diagnostic sink for the driver's hot loop
//
// Entry point: construct a costmodel.Strategy, build an aligner.Aligner
// around it, and call Align(g, query).
package poalign
