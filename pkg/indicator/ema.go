package indicator

import (
	"fmt"
)

/*
ema implements the exponential moving average

Exponential Moving Average (EMA)
- https://www.investopedia.com/terms/e/ema.asp

The smoothing factor is 2 / (period + 1) and the first output equals the first input.
MACD, RSI and ATR are built on this seeding, keep it.
*/
type EMA struct {
	period     int
	multiplier float64

	current float64
	count   int
}

func NewEMA(period int) (*EMA, error) {
	if err := checkPeriod("ema", period); err != nil {
		return nil, err
	}

	ema := makeEMA(period)
	return &ema, nil
}

// makeEMA builds the value owned by the composite indicators, the period must be validated
func makeEMA(period int) EMA {
	return EMA{
		period:     period,
		multiplier: 2.0 / float64(period+1),
	}
}

func (inc *EMA) Next(v float64) float64 {
	if inc.count == 0 {
		inc.current = v
	} else {
		inc.current = inc.multiplier*v + (1-inc.multiplier)*inc.current
	}

	inc.count++
	return inc.current
}

// Last returns the latest output, 0 before the first input
func (inc *EMA) Last() float64 {
	return inc.current
}

// Count returns the number of inputs seen since the last reset
func (inc *EMA) Count() int {
	return inc.count
}

func (inc *EMA) Reset() {
	inc.current = 0
	inc.count = 0
}

func (inc *EMA) Period() int {
	return inc.period
}

func (inc *EMA) String() string {
	return fmt.Sprintf("EMA(%d)", inc.period)
}

var _ Float64Indicator = &EMA{}
