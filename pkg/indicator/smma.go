package indicator

import "fmt"

// SMMA is the smoothed (or modified) moving average, Wilder's smoothing:
//
//	SMMA(i) = (SMMA(i-1) * (N - 1) + x(i)) / N
//
// the first output equals the first input.
type SMMA struct {
	period int

	current float64
	count   int
}

func NewSMMA(period int) (*SMMA, error) {
	if err := checkPeriod("smma", period); err != nil {
		return nil, err
	}

	return &SMMA{period: period}, nil
}

func (inc *SMMA) Next(v float64) float64 {
	if inc.count == 0 {
		inc.current = v
	} else {
		n := float64(inc.period)
		inc.current = (inc.current*(n-1) + v) / n
	}

	inc.count++
	return inc.current
}

func (inc *SMMA) Last() float64 {
	return inc.current
}

func (inc *SMMA) Reset() {
	inc.current = 0
	inc.count = 0
}

func (inc *SMMA) Period() int {
	return inc.period
}

func (inc *SMMA) String() string {
	return fmt.Sprintf("SMMA(%d)", inc.period)
}

var _ Float64Indicator = &SMMA{}
