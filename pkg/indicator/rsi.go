package indicator

import (
	"fmt"
	"math"
)

// RSINeutral is returned for the first input, when no price change has been observed yet.
const RSINeutral = 50.0

/*
rsi implements Relative Strength Index (RSI)

https://www.investopedia.com/terms/r/rsi.asp

The average gain and the average loss are smoothed with an EMA by default, SmoothingWilder
gives the classic Wilder's RSI. Both averages are seeded by the first price change.

	RSI = 100 - 100 / (1 + avgGain / avgLoss)

When the average loss is zero (including a flat market) the RSI is 100.
*/
type RSI struct {
	period    int
	smoothing SmoothingType

	avgGain, avgLoss Float64Indicator

	previous float64
	count    int
	value    float64
}

func NewRSI(period int) (*RSI, error) {
	return NewRSIWithSmoothing(period, SmoothingEMA)
}

func NewRSIWithSmoothing(period int, smoothing SmoothingType) (*RSI, error) {
	if err := checkPeriod("rsi", period); err != nil {
		return nil, err
	}

	smoothing, err := ParseSmoothingType(string(smoothing))
	if err != nil {
		return nil, err
	}

	avgGain, err := NewMovingAverage(smoothing, period)
	if err != nil {
		return nil, err
	}

	avgLoss, err := NewMovingAverage(smoothing, period)
	if err != nil {
		return nil, err
	}

	return &RSI{
		period:    period,
		smoothing: smoothing,
		avgGain:   avgGain,
		avgLoss:   avgLoss,
		value:     RSINeutral,
	}, nil
}

func (inc *RSI) Next(v float64) float64 {
	inc.count++
	if inc.count == 1 {
		// no previous price, just remember this one
		inc.previous = v
		inc.value = RSINeutral
		return inc.value
	}

	change := v - inc.previous
	inc.previous = v

	gain := inc.avgGain.Next(math.Max(change, 0))
	loss := inc.avgLoss.Next(math.Max(-change, 0))

	if loss == 0 {
		inc.value = 100.0
	} else {
		rs := gain / loss
		inc.value = 100.0 - 100.0/(1.0+rs)
	}

	return inc.value
}

// Ready reports whether at least one price change was observed.
func (inc *RSI) Ready() bool {
	return inc.count > 1
}

func (inc *RSI) Last() float64 {
	return inc.value
}

func (inc *RSI) Reset() {
	inc.avgGain.Reset()
	inc.avgLoss.Reset()
	inc.previous = 0
	inc.count = 0
	inc.value = RSINeutral
}

func (inc *RSI) Period() int {
	return inc.period
}

func (inc *RSI) Smoothing() SmoothingType {
	return inc.smoothing
}

func (inc *RSI) String() string {
	if inc.smoothing == SmoothingEMA {
		return fmt.Sprintf("RSI(%d)", inc.period)
	}
	return fmt.Sprintf("RSI(%d, %s)", inc.period, inc.smoothing)
}

var _ Float64Indicator = &RSI{}
