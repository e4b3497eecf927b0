package indicator

import (
	"github.com/c9s/tastream/pkg/types"
)

/*
obv implements on-balance volume indicator

On-Balance Volume (OBV) Definition
- https://www.investopedia.com/terms/o/onbalancevolume.asp

The volume is added when the close is above the previous close and subtracted when it's
below. The previous close starts at 0, so a positive first close adds its volume.
*/
type OBV struct {
	value         float64
	previousClose float64
}

func NewOBV() *OBV {
	return &OBV{}
}

func (inc *OBV) Next(q types.CloseVolumer) float64 {
	price := q.GetClose()

	switch {
	case price > inc.previousClose:
		inc.value += q.GetVolume()
	case price < inc.previousClose:
		inc.value -= q.GetVolume()
	}

	inc.previousClose = price
	return inc.value
}

func (inc *OBV) Last() float64 {
	return inc.value
}

func (inc *OBV) Reset() {
	inc.value = 0
	inc.previousClose = 0
}

func (inc *OBV) String() string {
	return "OBV"
}

var _ Indicator[types.CloseVolumer, float64] = &OBV{}
