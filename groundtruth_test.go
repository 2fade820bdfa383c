package recallgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevantSet(t *testing.T) {
	s := NewRelevantSet(3, 7, 7, 42)

	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(7))
	assert.True(t, s.Contains(42))
	assert.False(t, s.Contains(8))

	assert.False(t, s.IsEmpty())
	assert.Equal(t, uint64(3), s.Cardinality())
	assert.Equal(t, []uint32{3, 7, 42}, s.ToArray())
}

func TestRelevantSetZeroValue(t *testing.T) {
	var s RelevantSet

	assert.False(t, s.Contains(0))
	assert.True(t, s.IsEmpty())
	assert.Equal(t, uint64(0), s.Cardinality())
	assert.Nil(t, s.ToArray())
}

func TestNewGroundTruth(t *testing.T) {
	gt := NewGroundTruth([][]uint32{{1, 2}, {}, {9}})

	require.Len(t, gt, 3)
	assert.True(t, gt[0].Contains(2))
	assert.True(t, gt[1].IsEmpty())
	assert.True(t, gt[2].Contains(9))
	assert.False(t, gt[2].Contains(1))
}

func TestSingleRelevant(t *testing.T) {
	gt := SingleRelevant([]uint32{5, 0})

	require.Len(t, gt, 2)
	assert.True(t, gt[0].Contains(5))
	assert.Equal(t, uint64(1), gt[0].Cardinality())
	assert.True(t, gt[1].Contains(0))
}
