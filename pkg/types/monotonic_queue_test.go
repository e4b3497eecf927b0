package types

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bruteForceExtremum(values []float64, kind ExtremumType) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if kind == ExtremumMax {
			m = math.Max(m, v)
		} else {
			m = math.Min(m, v)
		}
	}
	return m
}

func TestMonotonicQueue_Push(t *testing.T) {
	tests := []struct {
		name   string
		kind   ExtremumType
		window int
		give   []float64
		want   []float64
	}{
		{
			name:   "max",
			kind:   ExtremumMax,
			window: 3,
			give:   []float64{4, 3, 5, 1, 1, 0, 2, 2},
			want:   []float64{4, 4, 5, 5, 5, 1, 2, 2},
		},
		{
			name:   "min",
			kind:   ExtremumMin,
			window: 3,
			give:   []float64{4, 3, 5, 1, 1, 6, 7, 8},
			want:   []float64{4, 3, 3, 1, 1, 1, 1, 6},
		},
		{
			name:   "window of one",
			kind:   ExtremumMax,
			window: 1,
			give:   []float64{3, 1, 2},
			want:   []float64{3, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewMonotonicQueue(tt.window, tt.kind)
			for i, v := range tt.give {
				assert.Equal(t, tt.want[i], q.Push(v), "tick %d", i)
				assert.Equal(t, tt.want[i], q.Value())
			}
		})
	}
}

func TestMonotonicQueue_BruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for _, kind := range []ExtremumType{ExtremumMin, ExtremumMax} {
		for _, window := range []int{1, 2, 5, 14} {
			q := NewMonotonicQueue(window, kind)
			var history []float64
			for i := 0; i < window*20; i++ {
				// coarse values so that duplicates happen
				v := math.Round(rnd.Float64()*20) / 2
				history = append(history, v)

				start := len(history) - window
				if start < 0 {
					start = 0
				}

				assert.Equal(t, bruteForceExtremum(history[start:], kind), q.Push(v), "%s window %d tick %d", kind, window, i)
				assert.Equal(t, len(history)-start, q.Length())
			}
		}
	}
}

func TestMonotonicQueue_Reset(t *testing.T) {
	q := NewMonotonicQueue(3, ExtremumMax)
	q.Push(10)
	q.Push(1)
	q.Reset()
	assert.Equal(t, 0, q.Length())
	assert.Equal(t, 0.0, q.Value())
	assert.Equal(t, 2.0, q.Push(2))
}

func TestMakeMonotonicQueue(t *testing.T) {
	q := MakeMonotonicQueue(0, ExtremumMin)
	assert.Equal(t, 1, q.Window())
	assert.Equal(t, ExtremumMin, q.Kind())
	assert.Equal(t, 4.0, q.Push(4))
	assert.Equal(t, 7.0, q.Push(7), "a window of one follows the input")
}
