// Package bucketqueue implements the score-bucketed queue the aligner uses
// in place of a general priority heap.
//
// All edge costs in the gap-affine and two-piece-affine schemes are small
// non-negative integers, so states never need to be reordered relative to
// each other by more than a handful of score steps. A deque of buckets,
// where bucket i holds every state due at (current score + i), gives O(1)
// amortized Enqueue/PopCurrent instead of container/heap's O(log n), since
// the deltas here are bounded by a handful of known constants (x, o, e, o2,
// e2).
package bucketqueue
