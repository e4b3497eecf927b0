package indicator

import (
	"fmt"

	"github.com/c9s/tastream/pkg/types"
)

/*
sma implements the simple moving average

Simple Moving Average (SMA)
- https://www.investopedia.com/terms/s/sma.asp

Before the window is filled, the output is the mean of the values seen so far.
*/
type SMA struct {
	period int
	values *types.Queue
	sum    float64
}

func NewSMA(period int) (*SMA, error) {
	if err := checkPeriod("sma", period); err != nil {
		return nil, err
	}

	return &SMA{
		period: period,
		values: types.NewQueue(period),
	}, nil
}

func (inc *SMA) Next(v float64) float64 {
	// the evicted value leaves the running sum before the new one joins it
	if old, evicted := inc.values.Push(v); evicted {
		inc.sum -= old
	}
	inc.sum += v
	return inc.sum / float64(inc.values.Length())
}

func (inc *SMA) Reset() {
	inc.values.Reset()
	inc.sum = 0
}

func (inc *SMA) Period() int {
	return inc.period
}

func (inc *SMA) String() string {
	return fmt.Sprintf("SMA(%d)", inc.period)
}

var _ Float64Indicator = &SMA{}
