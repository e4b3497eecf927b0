package indicator

import (
	"fmt"

	"github.com/c9s/tastream/pkg/types"
)

// Maximum returns the highest value of the last n inputs.
type Maximum struct {
	period int
	queue  types.MonotonicQueue
}

func NewMaximum(period int) (*Maximum, error) {
	if err := checkPeriod("maximum", period); err != nil {
		return nil, err
	}

	return &Maximum{
		period: period,
		queue:  types.MakeMonotonicQueue(period, types.ExtremumMax),
	}, nil
}

func (inc *Maximum) Next(v float64) float64 {
	return inc.queue.Push(v)
}

func (inc *Maximum) Last() float64 {
	return inc.queue.Value()
}

func (inc *Maximum) Reset() {
	inc.queue.Reset()
}

func (inc *Maximum) Period() int {
	return inc.period
}

func (inc *Maximum) String() string {
	return fmt.Sprintf("MAX(%d)", inc.period)
}

// Minimum returns the lowest value of the last n inputs.
type Minimum struct {
	period int
	queue  types.MonotonicQueue
}

func NewMinimum(period int) (*Minimum, error) {
	if err := checkPeriod("minimum", period); err != nil {
		return nil, err
	}

	return &Minimum{
		period: period,
		queue:  types.MakeMonotonicQueue(period, types.ExtremumMin),
	}, nil
}

func (inc *Minimum) Next(v float64) float64 {
	return inc.queue.Push(v)
}

func (inc *Minimum) Last() float64 {
	return inc.queue.Value()
}

func (inc *Minimum) Reset() {
	inc.queue.Reset()
}

func (inc *Minimum) Period() int {
	return inc.period
}

func (inc *Minimum) String() string {
	return fmt.Sprintf("MIN(%d)", inc.period)
}

var _ Float64Indicator = &Maximum{}
var _ Float64Indicator = &Minimum{}
