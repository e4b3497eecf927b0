package indicator

import (
	"fmt"
)

const (
	DefaultBOLLPeriod = 20
	DefaultBOLLK      = 2.0
)

// BOLLValue is the output of one BOLL tick.
type BOLLValue struct {
	Average float64 `json:"average"`
	Upper   float64 `json:"upper"`
	Lower   float64 `json:"lower"`
}

// Width returns the distance between the upper and the lower band.
func (v BOLLValue) Width() float64 {
	return v.Upper - v.Lower
}

/*
boll implements the bollinger indicator:

The Basics of Bollinger Bands
- https://www.investopedia.com/articles/technical/102201.asp

Bollinger Bands
- https://www.investopedia.com/terms/b/bollingerbands.asp

The middle band is the mean of the window and the bands are K population standard
deviations away from it.
*/
type BOLL struct {
	// times of Std, generally it's 2
	k float64

	sd StdDev

	value BOLLValue
}

func NewBOLL(period int, k float64) (*BOLL, error) {
	if k <= 0 {
		return nil, invalidParameter("boll multiplier must be positive, got %f", k)
	}

	sd, err := NewStdDev(period)
	if err != nil {
		return nil, err
	}

	return &BOLL{k: k, sd: *sd}, nil
}

func (inc *BOLL) Next(v float64) BOLLValue {
	sd := inc.sd.Next(v)
	mean := inc.sd.Mean()

	inc.value = BOLLValue{
		Average: mean,
		Upper:   mean + inc.k*sd,
		Lower:   mean - inc.k*sd,
	}
	return inc.value
}

func (inc *BOLL) Last() BOLLValue {
	return inc.value
}

func (inc *BOLL) Reset() {
	inc.sd.Reset()
	inc.value = BOLLValue{}
}

func (inc *BOLL) Period() int {
	return inc.sd.Period()
}

func (inc *BOLL) K() float64 {
	return inc.k
}

func (inc *BOLL) String() string {
	return fmt.Sprintf("BB(%d, %g)", inc.sd.Period(), inc.k)
}

var _ Indicator[float64, BOLLValue] = &BOLL{}
