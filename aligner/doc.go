// Package aligner drives the gap-affine sequence-to-graph alignment
// engine: it owns the pop/close-indels/extend/test/generate loop over a
// bucketqueue.Queue and statetree.Tree, and hands the winning terminal
// index to package backtrace to produce the final Alignment.
//
// The driver is polymorphic over scoring scheme via costmodel.Strategy; it
// never sees cost constants directly, mirroring how this codebase's other
// algorithm packages take their tunables through a closed Options value
// rather than bare parameters.
package aligner
