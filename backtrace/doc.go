// Package backtrace walks a statetree.Tree's parent pointers from a
// terminal state back to Start, producing the forward-ordered Alignment the
// aligner returns to its caller.
package backtrace
