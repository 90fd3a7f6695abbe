// Package graph defines the AlignableGraph contract consumed by the aligner,
// plus a concrete, thread-safe DAG implementation of it.
//
// An AlignableGraph is a directed acyclic graph whose real nodes each carry
// a single symbol, plus one virtual start node (no symbol, no predecessors)
// and one or more end nodes. Graph construction, FASTA/GFA ingestion, and
// any CLI around it are out of scope for this module; DAG exists so the
// aligner, the superbubble finder, and the test suite have a concrete graph
// to run against.
//
// DAG uses separate locks for topology vs. symbol data and enumerates
// successors and predecessors deterministically, in edge-insertion order.
// AddEdge does not deduplicate: adding the same edge twice records it twice.
package graph
