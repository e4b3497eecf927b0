package indicator

import (
	"strings"
)

// SmoothingType selects the moving average a composite indicator applies to its inner series.
type SmoothingType string

const (
	SmoothingSMA    SmoothingType = "sma"
	SmoothingEMA    SmoothingType = "ema"
	SmoothingWilder SmoothingType = "wilder"
)

func ParseSmoothingType(s string) (SmoothingType, error) {
	switch t := SmoothingType(strings.ToLower(strings.TrimSpace(s))); t {
	case SmoothingSMA, SmoothingEMA, SmoothingWilder:
		return t, nil
	case "smma", "rma":
		return SmoothingWilder, nil
	}

	return "", invalidParameter("unknown smoothing type %q", s)
}

// NewMovingAverage creates the moving average of the given smoothing type, aliases like
// "rma" are accepted.
func NewMovingAverage(t SmoothingType, period int) (Float64Indicator, error) {
	t, err := ParseSmoothingType(string(t))
	if err != nil {
		return nil, err
	}

	if err := checkPeriod("moving average", period); err != nil {
		return nil, err
	}

	switch t {
	case SmoothingSMA:
		sma, _ := NewSMA(period)
		return sma, nil
	case SmoothingEMA:
		ema := makeEMA(period)
		return &ema, nil
	default:
		return &SMMA{period: period}, nil
	}
}
