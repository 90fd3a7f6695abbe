package backtrace

import (
	"errors"

	"github.com/haplograph/poalign/graph"
)

// ErrBadBacktrace indicates the walk landed on an Insertion2/Deletion2
// phase directly, or on a non-start node with no parent pointer. Either
// condition means the state tree is corrupt: genuine long-gap pieces are
// always closed into a Match before they can appear in a terminal chain.
var ErrBadBacktrace = errors.New("backtrace: corrupt state chain")

// AlignedPair is one column of the final alignment. A nil field is the
// Option::None case: RPos nil means the query character was inserted with
// no graph counterpart; QPos nil means a graph node was deleted with no
// query counterpart.
type AlignedPair struct {
	RPos *graph.NodeID
	QPos *uint32
}

// Alignment is the forward-ordered result of one Align call.
type Alignment struct {
	Pairs []AlignedPair
}
