package statetree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haplograph/poalign/bucketqueue"
	"github.com/haplograph/poalign/costmodel"
	"github.com/haplograph/poalign/graph"
	"github.com/haplograph/poalign/phase"
	"github.com/haplograph/poalign/statetree"
)

func newStrategy(t *testing.T) costmodel.Strategy {
	t.Helper()
	s, err := costmodel.New(costmodel.WithMismatch(4), costmodel.WithGapAffine(4, 2))
	require.NoError(t, err)

	return s
}

func TestTree_AddNodeDeduplicates(t *testing.T) {
	d := graph.NewDAG()
	a := d.AddNode('A')
	tr := statetree.New(d, []byte("A"), newStrategy(t))

	ix1, isNew1 := tr.AddNode(statetree.Node{NodeID: a, Offset: 0, Phase: phase.Start})
	ix2, isNew2 := tr.AddNode(statetree.Node{NodeID: a, Offset: 0, Phase: phase.Start})

	assert.True(t, isNew1)
	assert.False(t, isNew2)
	assert.Equal(t, ix1, ix2)
	assert.Equal(t, 1, tr.Len())
}

func TestTree_GetNode_PanicsOutOfRange(t *testing.T) {
	tr := statetree.New(graph.NewDAG(), nil, newStrategy(t))
	assert.Panics(t, func() { tr.GetNode(42) })
}

func TestTree_CloseIndelsFor_MaterialisesMatch(t *testing.T) {
	d := graph.NewDAG()
	a := d.AddNode('A')
	tr := statetree.New(d, []byte("AA"), newStrategy(t))

	insIx, _ := tr.AddNode(statetree.Node{NodeID: a, Offset: 1, Phase: phase.Insertion})
	created := tr.CloseIndelsFor([]statetree.Ix{insIx})

	require.Len(t, created, 1)
	closed := tr.GetNode(created[0])
	assert.Equal(t, phase.Match, closed.Phase)
	assert.Equal(t, a, closed.NodeID)
	assert.Equal(t, uint32(1), closed.Offset)
	require.NotNil(t, closed.Parent)
	assert.Equal(t, statetree.ClosedIndel, closed.Parent.Kind)
	assert.Equal(t, insIx, closed.Parent.Ix)
}

func TestTree_CloseIndelsFor_SkipsIfAlreadyPresent(t *testing.T) {
	d := graph.NewDAG()
	a := d.AddNode('A')
	tr := statetree.New(d, []byte("AA"), newStrategy(t))

	insIx, _ := tr.AddNode(statetree.Node{NodeID: a, Offset: 1, Phase: phase.Insertion})
	tr.AddNode(statetree.Node{NodeID: a, Offset: 1, Phase: phase.Match})

	created := tr.CloseIndelsFor([]statetree.Ix{insIx})
	assert.Empty(t, created)
}

func TestTree_GenerateNext_EnqueuesNewSuccessorsOnly(t *testing.T) {
	d := graph.NewDAG()
	a := d.AddNode('A')
	c := d.AddNode('C')
	require.NoError(t, d.AddEdge(a, c))
	tr := statetree.New(d, []byte("AA"), newStrategy(t))

	startIx, _ := tr.AddNode(statetree.Node{NodeID: a, Offset: 0, Phase: phase.Start})
	q := bucketqueue.New()
	tr.GenerateNext(q, startIx)
	tr.GenerateNext(q, startIx) // every successor already exists: nothing more is enqueued

	// mismatch (C,1) cost 4, insertion (A,1) cost 6, deletion (C,0) cost 6
	assert.Len(t, q.PopCurrent(), 0)
	for i := 0; i < 4; i++ {
		q.Advance()
	}
	assert.Len(t, q.PopCurrent(), 1)
	q.Advance()
	q.Advance()
	assert.Len(t, q.PopCurrent(), 2)
}
