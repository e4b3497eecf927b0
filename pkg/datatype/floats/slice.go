package floats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Slice is a growable series of float64 values. The indicators never use it on the
// per-tick path, it's for the callers collecting outputs and for the reference
// (full history) computations in the tests.
type Slice []float64

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Length() int {
	return len(s)
}

func (s Slice) Mean() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return stat.Mean(s, nil)
}

// Std returns the population standard deviation.
func (s Slice) Std() float64 {
	n := len(s)
	if n < 2 {
		return 0.0
	}

	_, variance := stat.MeanVariance(s, nil)
	// MeanVariance is unbiased, scale it back to the population variance
	return math.Sqrt(variance * float64(n-1) / float64(n))
}

func (s Slice) Max() float64 {
	m := -math.MaxFloat64
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Slice) Min() float64 {
	m := math.MaxFloat64
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}
