package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue(t *testing.T) {
	pq := NewMin(4)

	_, ok := pq.PopItem()
	assert.False(t, ok)

	pq.PushItem(Item{Code: 3, Distance: 2.5})
	pq.PushItem(Item{Code: 1, Distance: 0.5})
	pq.PushItem(Item{Code: 9, Distance: 1.0})
	pq.PushItem(Item{Code: 2, Distance: 1.0})
	pq.PushItem(Item{Code: 7, Distance: 0})
	require.Equal(t, 5, pq.Len())

	top, ok := pq.TopItem()
	require.True(t, ok)
	assert.Equal(t, uint32(7), top.Code)

	var got []uint32
	for pq.Len() > 0 {
		it, ok := pq.PopItem()
		require.True(t, ok)
		got = append(got, it.Code)
	}
	assert.Equal(t, []uint32{7, 1, 2, 9, 3}, got, "ties are broken by code")
}

func TestPriorityQueue_Reset(t *testing.T) {
	pq := NewMin(0)
	pq.PushItem(Item{Code: 1, Distance: 1})
	pq.Reset()
	assert.Equal(t, 0, pq.Len())
	_, ok := pq.TopItem()
	assert.False(t, ok)
}

func TestFIFO(t *testing.T) {
	q := NewFIFO[int](2)

	_, ok := q.Pop()
	assert.False(t, ok)

	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	assert.Equal(t, 5, q.Len())

	v, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 0, v)

	q.Push(5)
	q.Push(6)
	q.Push(7)

	var got []int
	for q.Len() > 0 {
		v, _ := q.Pop()
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got)
}

func TestFIFO_ZeroCapacity(t *testing.T) {
	q := NewFIFO[string](0)
	q.Push("a")
	q.Push("b")
	v, _ := q.Pop()
	assert.Equal(t, "a", v)
}
