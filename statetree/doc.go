// Package statetree implements the alignment state tree: an append-only
// arena of explored (node, offset, phase) states, addressed by dense index,
// with parent/backtrace pointers and indel-closure support.
//
// The tree never fails on insertion, and GetNode panics on an out-of-range
// index -- by construction every Ix handed to a caller came from AddNode on
// this same Tree, so an out-of-range Ix means a bug upstream, not bad input.
package statetree
