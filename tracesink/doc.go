// Package tracesink implements the aligner's debug-sink collaborator: a
// boundary the core driver calls into off its scoring logic to report
// state-tree growth, without the driver knowing or caring how (or whether)
// those messages are persisted.
//
// The teacher's own packages never needed a logging seam -- they return
// values and let the caller decide what to do with them -- so this package
// borrows its shape from go.uber.org/zap, used here the way the wider
// corpus's services wire structured logging: one *zap.Logger, fields
// attached per call site, no string formatting on the hot path.
package tracesink
