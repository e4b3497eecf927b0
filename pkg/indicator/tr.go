package indicator

import (
	"math"

	"github.com/c9s/tastream/pkg/types"
)

// TrueRange is the greatest of the current high minus low, the distance from the
// previous close to the current high and the distance from the previous close to
// the current low. The first output is high minus low.
//
// NextPrice treats a single price as a bar with equal high, low and close, the
// true range then is the absolute change from the previous price.
type TrueRange struct {
	previousClose float64
	seen          bool
}

func NewTrueRange() *TrueRange {
	return &TrueRange{}
}

func (inc *TrueRange) Next(q types.HighLowCloser) float64 {
	return inc.next(q.GetHigh(), q.GetLow(), q.GetClose())
}

func (inc *TrueRange) NextPrice(v float64) float64 {
	return inc.next(v, v, v)
}

func (inc *TrueRange) next(high, low, closePrice float64) float64 {
	tr := high - low
	if inc.seen {
		tr = math.Max(tr, math.Max(
			math.Abs(high-inc.previousClose),
			math.Abs(low-inc.previousClose),
		))
	}

	inc.previousClose = closePrice
	inc.seen = true
	return tr
}

func (inc *TrueRange) Reset() {
	inc.previousClose = 0
	inc.seen = false
}

func (inc *TrueRange) String() string {
	return "TRUE_RANGE()"
}

var _ Indicator[types.HighLowCloser, float64] = &TrueRange{}
