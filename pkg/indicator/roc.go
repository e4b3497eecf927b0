package indicator

import (
	"fmt"

	"github.com/c9s/tastream/pkg/types"
)

// ROC is the rate of change in percent between the current value and the value n
// ticks ago. Until n values were seen the oldest value is the base, so the first
// output is 0. A zero base gives 0.
//
//	ROC = (price - base) / base * 100
type ROC struct {
	period int
	prices *types.Queue
}

func NewROC(period int) (*ROC, error) {
	if err := checkPeriod("roc", period); err != nil {
		return nil, err
	}

	return &ROC{
		period: period,
		// the current price plus the n previous ones
		prices: types.NewQueue(period + 1),
	}, nil
}

func (inc *ROC) Next(v float64) float64 {
	inc.prices.Push(v)

	base := inc.prices.Index(0)
	if base == 0 {
		return 0
	}

	return (v - base) / base * 100.0
}

func (inc *ROC) Reset() {
	inc.prices.Reset()
}

func (inc *ROC) Period() int {
	return inc.period
}

func (inc *ROC) String() string {
	return fmt.Sprintf("ROC(%d)", inc.period)
}

var _ Float64Indicator = &ROC{}
