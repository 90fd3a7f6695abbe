package costmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haplograph/poalign/costmodel"
	"github.com/haplograph/poalign/graph"
	"github.com/haplograph/poalign/phase"
)

func TestNew_RejectsNegativeCosts(t *testing.T) {
	_, err := costmodel.New(costmodel.WithMismatch(-1))
	assert.ErrorIs(t, err, costmodel.ErrBadCost)
}

func TestNew_DefaultsToAffine(t *testing.T) {
	s, err := costmodel.New(costmodel.WithMismatch(4), costmodel.WithGapAffine(4, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, s.ExtendCost())
}

func TestAffine_MismatchSuccessors(t *testing.T) {
	d := graph.NewDAG()
	a := d.AddNode('A')
	c := d.AddNode('C')
	require.NoError(t, d.AddEdge(a, c))

	s, err := costmodel.New(costmodel.WithMismatch(4), costmodel.WithGapAffine(4, 2))
	require.NoError(t, err)

	query := []byte("AA")
	succs := s.Successors(d, query, a, 0, phase.Start)

	var gotMismatch, gotInsOpen, gotDelOpen bool
	for _, sc := range succs {
		switch {
		case sc.Phase == phase.Mismatch && sc.NodeID == c && sc.Offset == 1:
			assert.Equal(t, 4, sc.DeltaScore)
			gotMismatch = true
		case sc.Phase == phase.Insertion && sc.NodeID == a && sc.Offset == 1:
			assert.Equal(t, 6, sc.DeltaScore)
			gotInsOpen = true
		case sc.Phase == phase.Deletion && sc.NodeID == c && sc.Offset == 0:
			assert.Equal(t, 6, sc.DeltaScore)
			gotDelOpen = true
		}
	}
	assert.True(t, gotMismatch, "expected a mismatch successor")
	assert.True(t, gotInsOpen, "expected an insertion-open successor")
	assert.True(t, gotDelOpen, "expected a deletion-open successor")
}

func TestAffine_NoMismatchWhenSymbolEqual(t *testing.T) {
	d := graph.NewDAG()
	a := d.AddNode('A')
	c := d.AddNode('A')
	require.NoError(t, d.AddEdge(a, c))

	s, err := costmodel.New(costmodel.WithMismatch(4), costmodel.WithGapAffine(4, 2))
	require.NoError(t, err)

	succs := s.Successors(d, []byte("A"), a, 0, phase.Start)
	for _, sc := range succs {
		assert.NotEqual(t, phase.Mismatch, sc.Phase)
	}
}

func TestAffine_IndelExtendOnlyFromMatchingPhase(t *testing.T) {
	d := graph.NewDAG()
	a := d.AddNode('A')
	c := d.AddNode('C')
	require.NoError(t, d.AddEdge(a, c))
	s, err := costmodel.New(costmodel.WithMismatch(4), costmodel.WithGapAffine(4, 2))
	require.NoError(t, err)

	succs := s.Successors(d, []byte("AA"), a, 0, phase.Insertion)
	require.Len(t, succs, 1)
	assert.Equal(t, phase.Insertion, succs[0].Phase)
	assert.Equal(t, 2, succs[0].DeltaScore)
}

func TestTwoPiece_EmitsLongGapPieces(t *testing.T) {
	d := graph.NewDAG()
	a := d.AddNode('A')
	c := d.AddNode('C')
	require.NoError(t, d.AddEdge(a, c))
	s, err := costmodel.New(
		costmodel.WithMismatch(4),
		costmodel.WithGapAffine(4, 2),
		costmodel.WithTwoPiece(20, 1),
	)
	require.NoError(t, err)

	succs := s.Successors(d, []byte("A"), a, 0, phase.Start)
	var gotIns2, gotDel2 bool
	for _, sc := range succs {
		if sc.Phase == phase.Insertion2 {
			assert.Equal(t, 21, sc.DeltaScore)
			gotIns2 = true
		}
		if sc.Phase == phase.Deletion2 {
			assert.Equal(t, 21, sc.DeltaScore)
			gotDel2 = true
		}
	}
	assert.True(t, gotIns2)
	assert.True(t, gotDel2)
	assert.Equal(t, 1, s.ExtendCost())
}
