package bucketqueue

// Ix is the arena index type shared with the state tree; duplicated here
// (rather than imported) to keep bucketqueue free of a dependency on
// statetree, since the queue only ever moves opaque indices around.
type Ix uint32

// Queue is a deque of score buckets. Bucket 0 is the currently active
// score; PopCurrent drains it, and the caller advances the score by
// rolling empty buckets off the front.
//
// Not safe for concurrent use: one Queue belongs to exactly one Align call.
type Queue struct {
	buckets [][]Ix
}

// New returns an empty Queue with bucket 0 ready to receive items.
func New() *Queue {
	return &Queue{buckets: [][]Ix{nil}}
}

// Enqueue adds ix to the bucket extraScore slots ahead of the current
// front bucket. extraScore must be >= 0.
func (q *Queue) Enqueue(extraScore int, ix Ix) {
	for len(q.buckets) <= extraScore {
		q.buckets = append(q.buckets, nil)
	}
	q.buckets[extraScore] = append(q.buckets[extraScore], ix)
}

// PopCurrent removes and returns the front bucket's contents (possibly
// empty) without advancing the score. Call Advance after handling an empty
// result to move to the next score.
func (q *Queue) PopCurrent() []Ix {
	if len(q.buckets) == 0 {
		return nil
	}
	cur := q.buckets[0]
	q.buckets[0] = nil

	return cur
}

// Advance drops the front bucket and shifts every remaining bucket down by
// one score step, appending a fresh empty bucket at the tail. Call this
// after PopCurrent whenever the caller is done with the current score,
// whether or not that bucket was empty.
func (q *Queue) Advance() {
	if len(q.buckets) == 0 {
		q.buckets = [][]Ix{nil}

		return
	}
	q.buckets = append(q.buckets[1:], nil)
}

// Empty reports whether every bucket currently held is empty, i.e. whether
// the main loop has nothing left to drive even after exhausting Advance.
func (q *Queue) Empty() bool {
	for _, b := range q.buckets {
		if len(b) > 0 {
			return false
		}
	}

	return true
}
