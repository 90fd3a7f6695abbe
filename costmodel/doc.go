// Package costmodel implements the per-scheme rules for generating
// alignment-state successors (gap-affine and two-piece gap-affine) and the
// pruning lower bound the aligner consults before enqueuing a successor.
//
// The driver is polymorphic over Strategy; cost constants never leak into
// statetree or aligner, following the functional-options convention for
// keeping an algorithm's knobs in one small, validated struct separate from
// the engine that consumes them.
package costmodel
