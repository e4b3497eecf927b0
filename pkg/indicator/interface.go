package indicator

// Indicator is the contract shared by every streaming indicator.
//
// Next consumes one data point and returns the value as of and including that point.
// It runs in constant time and memory and never fails: degenerate numeric cases map to
// documented values. Reset restores the freshly constructed state and keeps the configuration.
type Indicator[I, O any] interface {
	Next(in I) O
	Reset()
}

// Float64Indicator is the scalar indicator: SMA, EMA, RSI and friends.
//
//go:generate mockgen -destination=mocks/mock_float64_indicator.go -package=mocks . Float64Indicator
type Float64Indicator interface {
	Next(v float64) float64
	Reset()
}

var _ Indicator[float64, float64] = Float64Indicator(nil)
