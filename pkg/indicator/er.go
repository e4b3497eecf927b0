package indicator

import (
	"fmt"
	"math"

	"github.com/c9s/tastream/pkg/types"
)

// EfficiencyRatio is Kaufman's efficiency ratio over the window, the net price change
// divided by the sum of the absolute tick to tick changes.
//
// The ratio is 1 while no more than two prices were seen, and when the prices did not move.
type EfficiencyRatio struct {
	period int
	prices *types.Queue
}

func NewEfficiencyRatio(period int) (*EfficiencyRatio, error) {
	if err := checkPeriod("efficiency ratio", period); err != nil {
		return nil, err
	}

	return &EfficiencyRatio{
		period: period,
		prices: types.NewQueue(period + 1),
	}, nil
}

func (inc *EfficiencyRatio) Next(v float64) float64 {
	inc.prices.Push(v)
	if inc.prices.Length() <= 2 {
		return 1.0
	}

	var volatility float64
	inc.prices.Each(func(i int, price float64) bool {
		if i > 0 {
			volatility += math.Abs(price - inc.prices.Index(i-1))
		}
		return true
	})

	if volatility == 0 {
		return 1.0
	}

	direction := math.Abs(v - inc.prices.Index(0))
	return direction / volatility
}

func (inc *EfficiencyRatio) Reset() {
	inc.prices.Reset()
}

func (inc *EfficiencyRatio) Period() int {
	return inc.period
}

func (inc *EfficiencyRatio) String() string {
	return fmt.Sprintf("ER(%d)", inc.period)
}

var _ Float64Indicator = &EfficiencyRatio{}
