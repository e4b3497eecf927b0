package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_Push(t *testing.T) {
	q := NewQueue(3)
	assert.Equal(t, 3, q.Cap())
	assert.Equal(t, 0, q.Length())
	assert.False(t, q.Full())

	for _, v := range []float64{1, 2, 3} {
		_, evicted := q.Push(v)
		assert.False(t, evicted)
	}
	assert.True(t, q.Full())
	assert.Equal(t, []float64{1, 2, 3}, q.Values())

	old, evicted := q.Push(4)
	assert.True(t, evicted)
	assert.Equal(t, 1.0, old)
	assert.Equal(t, []float64{2, 3, 4}, q.Values())

	old, evicted = q.Push(5)
	assert.True(t, evicted)
	assert.Equal(t, 2.0, old)
	assert.Equal(t, 3, q.Length())
	assert.Equal(t, 3.0, q.Index(0))
	assert.Equal(t, 5.0, q.Index(2))
	assert.Equal(t, 5.0, q.Last(0))
	assert.Equal(t, 4.0, q.Last(1))
	assert.Equal(t, 0.0, q.Index(3), "out of range index returns zero")
	assert.Equal(t, 0.0, q.Last(-1))
}

func TestQueue_Each(t *testing.T) {
	q := NewQueue(4)
	for i := 1; i <= 10; i++ {
		q.Push(float64(i))
	}

	var seen []float64
	q.Each(func(i int, v float64) bool {
		seen = append(seen, v)
		return i < 2
	})
	assert.Equal(t, []float64{7, 8, 9}, seen)
}

func TestQueue_Reset(t *testing.T) {
	q := NewQueue(2)
	q.Push(1)
	q.Push(2)
	q.Push(3)
	q.Reset()
	assert.Equal(t, 0, q.Length())
	assert.Empty(t, q.Values())

	q.Push(9)
	assert.Equal(t, []float64{9}, q.Values())
}

func TestNewQueue_MinimumCapacity(t *testing.T) {
	q := NewQueue(0)
	assert.Equal(t, 1, q.Cap())
	q.Push(1)
	old, evicted := q.Push(2)
	assert.True(t, evicted)
	assert.Equal(t, 1.0, old)
	assert.Equal(t, []float64{2}, q.Values())
}
