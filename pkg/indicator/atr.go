package indicator

import (
	"fmt"

	"github.com/c9s/tastream/pkg/types"
)

/*
atr implements the average true range indicator

Average True Range (ATR)
- https://www.investopedia.com/terms/a/atr.asp

The true range is smoothed with an EMA of the period.
*/
type ATR struct {
	tr  TrueRange
	ema EMA
}

func NewATR(period int) (*ATR, error) {
	if err := checkPeriod("atr", period); err != nil {
		return nil, err
	}

	return &ATR{ema: makeEMA(period)}, nil
}

func (inc *ATR) Next(q types.HighLowCloser) float64 {
	return inc.ema.Next(inc.tr.Next(q))
}

// NextPrice smooths the absolute price changes, see TrueRange.NextPrice.
func (inc *ATR) NextPrice(v float64) float64 {
	return inc.ema.Next(inc.tr.NextPrice(v))
}

func (inc *ATR) Last() float64 {
	return inc.ema.Last()
}

func (inc *ATR) Reset() {
	inc.tr.Reset()
	inc.ema.Reset()
}

func (inc *ATR) Period() int {
	return inc.ema.Period()
}

func (inc *ATR) String() string {
	return fmt.Sprintf("ATR(%d)", inc.ema.Period())
}

var _ Indicator[types.HighLowCloser, float64] = &ATR{}
