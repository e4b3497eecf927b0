package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice_Stats(t *testing.T) {
	var s Slice
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Push(v)
	}

	assert.Equal(t, 8, s.Length())
	assert.InDelta(t, 5.0, s.Mean(), 1e-9)
	assert.InDelta(t, 2.0, s.Std(), 1e-9)
	assert.Equal(t, 9.0, s.Max())
	assert.Equal(t, 2.0, s.Min())
	assert.Equal(t, 0.0, Slice{3}.Std())
	assert.Equal(t, 0.0, Slice{}.Mean())
}
