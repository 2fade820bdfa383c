package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxPushPop(t *testing.T) {
	q := NewMax(4)
	q.Push(Item{ID: 1, Distance: 2.0})
	q.Push(Item{ID: 2, Distance: 1.0})
	q.Push(Item{ID: 3, Distance: 3.0})

	top, ok := q.Top()
	require.True(t, ok)
	assert.Equal(t, uint32(3), top.ID)

	item, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, uint32(3), item.ID)
	assert.Equal(t, 2, q.Len())
}

func TestMaxPushBounded(t *testing.T) {
	q := NewMax(2)
	q.PushBounded(Item{ID: 0, Distance: 5}, 2)
	q.PushBounded(Item{ID: 1, Distance: 3}, 2)
	q.PushBounded(Item{ID: 2, Distance: 4}, 2) // evicts id=0
	q.PushBounded(Item{ID: 3, Distance: 9}, 2) // discarded

	got := q.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, uint32(1), got[0].ID)
	assert.Equal(t, uint32(2), got[1].ID)
}

func TestMaxTieBreakByID(t *testing.T) {
	// Equal distances must drain in ascending ID order regardless of
	// insertion order.
	q := NewMax(3)
	q.PushBounded(Item{ID: 7, Distance: 1}, 3)
	q.PushBounded(Item{ID: 2, Distance: 1}, 3)
	q.PushBounded(Item{ID: 5, Distance: 1}, 3)

	got := q.Drain()
	require.Len(t, got, 3)
	assert.Equal(t, uint32(2), got[0].ID)
	assert.Equal(t, uint32(5), got[1].ID)
	assert.Equal(t, uint32(7), got[2].ID)
}

func TestMaxTieBreakEviction(t *testing.T) {
	// With equal distances the larger ID is the worse candidate and gets
	// evicted first.
	q := NewMax(1)
	q.PushBounded(Item{ID: 9, Distance: 1}, 1)
	q.PushBounded(Item{ID: 4, Distance: 1}, 1)

	got := q.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, uint32(4), got[0].ID)
}

func TestMaxEmpty(t *testing.T) {
	q := NewMax(0)

	_, ok := q.Top()
	assert.False(t, ok)

	_, ok = q.Pop()
	assert.False(t, ok)

	assert.Empty(t, q.Drain())
}
