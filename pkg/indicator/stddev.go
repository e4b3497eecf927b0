package indicator

import (
	"fmt"
	"math"

	"github.com/c9s/tastream/pkg/types"
)

// StdDev is the population standard deviation of the last n inputs.
// Before the window is filled it covers the values seen so far.
//
// The mean and the sum of squared deviations (m2) are updated with Welford's method while
// the window fills. Once values get evicted both are recomputed from the window.
type StdDev struct {
	period int
	values *types.Queue

	mean float64
	m2   float64
}

func NewStdDev(period int) (*StdDev, error) {
	if err := checkPeriod("stddev", period); err != nil {
		return nil, err
	}

	return &StdDev{
		period: period,
		values: types.NewQueue(period),
	}, nil
}

func (inc *StdDev) Next(v float64) float64 {
	_, evicted := inc.values.Push(v)
	n := float64(inc.values.Length())

	if evicted {
		inc.recompute()
	} else {
		delta := v - inc.mean
		inc.mean += delta / n
		inc.m2 += delta * (v - inc.mean)
	}

	// rounding errors can push m2 slightly below zero
	if inc.m2 < 0 {
		inc.m2 = 0
	}

	return math.Sqrt(inc.m2 / n)
}

// recompute folds the window twice, the sum first and then the squared deviations.
// A window of equal values yields exactly zero.
func (inc *StdDev) recompute() {
	first := inc.values.Index(0)
	flat := true
	sum := 0.0
	inc.values.Each(func(_ int, x float64) bool {
		sum += x
		flat = flat && x == first
		return true
	})

	if flat {
		inc.mean = first
		inc.m2 = 0
		return
	}

	inc.mean = sum / float64(inc.values.Length())
	inc.m2 = 0
	inc.values.Each(func(_ int, x float64) bool {
		d := x - inc.mean
		inc.m2 += d * d
		return true
	})
}

// Mean returns the mean of the current window.
func (inc *StdDev) Mean() float64 {
	return inc.mean
}

func (inc *StdDev) Last() float64 {
	n := inc.values.Length()
	if n == 0 {
		return 0
	}
	return math.Sqrt(inc.m2 / float64(n))
}

func (inc *StdDev) Reset() {
	inc.values.Reset()
	inc.mean = 0
	inc.m2 = 0
}

func (inc *StdDev) Period() int {
	return inc.period
}

func (inc *StdDev) String() string {
	return fmt.Sprintf("SD(%d)", inc.period)
}

var _ Float64Indicator = &StdDev{}
