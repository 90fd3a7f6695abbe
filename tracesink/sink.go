package tracesink

import "go.uber.org/zap"

// Sink receives diagnostic messages emitted off the aligner's hot path.
// Implementations must not block the caller for long; ZapSink's
// StateTreeSnapshot is a single structured log call and returns immediately.
type Sink interface {
	// StateTreeSnapshot reports the tree's size and the score bucket
	// currently being drained, at whatever cadence the caller chooses
	// (the aligner calls it once for each score whose bucket held states,
	// never per state).
	StateTreeSnapshot(score, treeLen int)
}

// ZapSink is a Sink backed by a *zap.Logger.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink wraps log. With a nil log the returned sink's
// StateTreeSnapshot does nothing.
func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

// StateTreeSnapshot logs the tree's current size at the given score.
func (s *ZapSink) StateTreeSnapshot(score, treeLen int) {
	if s == nil || s.log == nil {
		return
	}
	s.log.Debug("state tree snapshot",
		zap.Int("score", score),
		zap.Int("tree_len", treeLen),
	)
}
