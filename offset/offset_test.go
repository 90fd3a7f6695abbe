package offset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haplograph/poalign/offset"
)

func TestMax(t *testing.T) {
	assert.Equal(t, uint64(255), offset.Max[uint8]())
	assert.Equal(t, uint64(65535), offset.Max[uint16]())
	assert.Equal(t, uint64(4294967295), offset.Max[uint32]())
}

func TestValidate_Uint8(t *testing.T) {
	assert.NoError(t, offset.Validate[uint8](255))
	assert.ErrorIs(t, offset.Validate[uint8](256), offset.ErrTooNarrow)
	assert.ErrorIs(t, offset.Validate[uint8](257), offset.ErrTooNarrow)
}

func TestValidate_EmptyQuery(t *testing.T) {
	assert.NoError(t, offset.Validate[uint8](0))
}

func TestBitsNeeded(t *testing.T) {
	assert.Equal(t, 0, offset.BitsNeeded(0))
	assert.Equal(t, 0, offset.BitsNeeded(1))
	assert.Equal(t, 3, offset.BitsNeeded(8))
}
