package floats

import "math"

// Windows calls f with the last `window` values (fewer during the warm-up) ending at every index.
func Windows(arr []float64, window int, f func(i int, win Slice)) {
	for i := range arr {
		start := i + 1 - window
		if start < 0 {
			start = 0
		}
		f(i, Slice(arr[start:i+1]))
	}
}

// RollingMinMax computes the lowest and highest values of every window by scanning it.
// The first window-1 outputs cover the values seen so far.
func RollingMinMax(inReal []float64, window int) (outMin []float64, outMax []float64) {
	outMin = make([]float64, len(inReal))
	outMax = make([]float64, len(inReal))
	Windows(inReal, window, func(i int, win Slice) {
		lowest, highest := math.MaxFloat64, -math.MaxFloat64
		for _, v := range win {
			lowest = math.Min(lowest, v)
			highest = math.Max(highest, v)
		}
		outMin[i] = lowest
		outMax[i] = highest
	})
	return outMin, outMax
}
