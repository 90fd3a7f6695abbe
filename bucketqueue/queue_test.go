package bucketqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haplograph/poalign/bucketqueue"
)

func TestQueue_PopCurrentEmpty(t *testing.T) {
	q := bucketqueue.New()
	assert.Empty(t, q.PopCurrent())
	assert.True(t, q.Empty())
}

func TestQueue_EnqueueSameScore(t *testing.T) {
	q := bucketqueue.New()
	q.Enqueue(0, 1)
	q.Enqueue(0, 2)
	assert.Equal(t, []bucketqueue.Ix{1, 2}, q.PopCurrent())
}

func TestQueue_AdvanceRollsBucketsForward(t *testing.T) {
	q := bucketqueue.New()
	q.Enqueue(2, 7) // due two scores from now
	assert.Empty(t, q.PopCurrent())

	q.Advance()
	assert.Empty(t, q.PopCurrent())

	q.Advance()
	assert.Equal(t, []bucketqueue.Ix{7}, q.PopCurrent())
}

func TestQueue_EmptyAfterDraining(t *testing.T) {
	q := bucketqueue.New()
	q.Enqueue(0, 1)
	q.PopCurrent()
	q.Advance()
	assert.True(t, q.Empty())
}
