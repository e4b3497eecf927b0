package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindows(t *testing.T) {
	var got []Slice
	Windows([]float64{1, 2, 3, 4}, 2, func(i int, win Slice) {
		got = append(got, append(Slice{}, win...))
	})
	assert.Equal(t, []Slice{{1}, {1, 2}, {2, 3}, {3, 4}}, got)
}

func TestRollingMinMax(t *testing.T) {
	outMin, outMax := RollingMinMax([]float64{3, 1, 4, 1, 5, 9, 2, 6}, 3)
	assert.Equal(t, []float64{3, 1, 1, 1, 1, 1, 2, 2}, outMin)
	assert.Equal(t, []float64{3, 3, 4, 4, 5, 9, 9, 9}, outMax)
}
