package indicator

import (
	"fmt"

	"github.com/c9s/tastream/pkg/types"
)

const (
	DefaultStochPeriod  = 14
	DefaultStochDPeriod = 3
)

// StochNeutral is the %K value when the highest high equals the lowest low in the window.
const StochNeutral = 50.0

/*
stoch implements stochastic oscillator indicator

Stochastic Oscillator
- https://www.investopedia.com/terms/s/stochasticoscillator.asp

	%K = 100 * (close - lowest low) / (highest high - lowest low)
	%D = moving average of %K
*/

// FastStoch computes the raw %K line. The highest high and the lowest low of the
// window are maintained with monotonic queues.
type FastStoch struct {
	period int

	highs types.MonotonicQueue
	lows  types.MonotonicQueue

	value float64
}

func NewFastStoch(period int) (*FastStoch, error) {
	if err := checkPeriod("stoch", period); err != nil {
		return nil, err
	}

	k := makeFastStoch(period)
	return &k, nil
}

// makeFastStoch builds the %K line owned by Stoch, the period must be validated by the caller.
func makeFastStoch(period int) FastStoch {
	return FastStoch{
		period: period,
		highs:  types.MakeMonotonicQueue(period, types.ExtremumMax),
		lows:   types.MakeMonotonicQueue(period, types.ExtremumMin),
	}
}

func (inc *FastStoch) Next(q types.HighLowCloser) float64 {
	return inc.next(q.GetHigh(), q.GetLow(), q.GetClose())
}

// NextPrice feeds a single price used as the high, the low and the close.
func (inc *FastStoch) NextPrice(v float64) float64 {
	return inc.next(v, v, v)
}

func (inc *FastStoch) next(high, low, closePrice float64) float64 {
	highest := inc.highs.Push(high)
	lowest := inc.lows.Push(low)

	if highest == lowest {
		inc.value = StochNeutral
	} else {
		inc.value = 100.0 * (closePrice - lowest) / (highest - lowest)
	}

	return inc.value
}

func (inc *FastStoch) Last() float64 {
	return inc.value
}

func (inc *FastStoch) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
	inc.value = 0
}

func (inc *FastStoch) Period() int {
	return inc.period
}

func (inc *FastStoch) String() string {
	return fmt.Sprintf("FastStoch(%d)", inc.period)
}

// StochValue is the output of one Stoch tick.
type StochValue struct {
	K float64 `json:"k"`
	D float64 `json:"d"`
}

// Stoch is the full stochastic oscillator: the %K line and its %D signal line.
type Stoch struct {
	k         FastStoch
	d         Float64Indicator
	dPeriod   int
	smoothing SmoothingType

	value StochValue
}

func NewStoch(period, dPeriod int) (*Stoch, error) {
	return NewStochWithSmoothing(period, dPeriod, SmoothingSMA)
}

func NewStochWithSmoothing(period, dPeriod int, smoothing SmoothingType) (*Stoch, error) {
	if err := checkPeriod("stoch", period); err != nil {
		return nil, err
	}

	if err := checkPeriod("stoch %D", dPeriod); err != nil {
		return nil, err
	}

	smoothing, err := ParseSmoothingType(string(smoothing))
	if err != nil {
		return nil, err
	}

	d, err := NewMovingAverage(smoothing, dPeriod)
	if err != nil {
		return nil, err
	}

	return &Stoch{
		k:         makeFastStoch(period),
		d:         d,
		dPeriod:   dPeriod,
		smoothing: smoothing,
	}, nil
}

func (inc *Stoch) Next(q types.HighLowCloser) StochValue {
	k := inc.k.Next(q)
	inc.value = StochValue{K: k, D: inc.d.Next(k)}
	return inc.value
}

func (inc *Stoch) Last() StochValue {
	return inc.value
}

func (inc *Stoch) Reset() {
	inc.k.Reset()
	inc.d.Reset()
	inc.value = StochValue{}
}

func (inc *Stoch) Period() int {
	return inc.k.Period()
}

func (inc *Stoch) DPeriod() int {
	return inc.dPeriod
}

func (inc *Stoch) String() string {
	return fmt.Sprintf("Stoch(%d, %d)", inc.k.Period(), inc.dPeriod)
}

var _ Indicator[types.HighLowCloser, float64] = &FastStoch{}
var _ Indicator[types.HighLowCloser, StochValue] = &Stoch{}
