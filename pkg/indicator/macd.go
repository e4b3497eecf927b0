package indicator

import "fmt"

const (
	DefaultMACDFastPeriod   = 12
	DefaultMACDSlowPeriod   = 26
	DefaultMACDSignalPeriod = 9
)

// MACDValue is the output of one MACD tick.
type MACDValue struct {
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

/*
macd implements moving average convergence divergence indicator

Moving Average Convergence Divergence (MACD)
- https://www.investopedia.com/terms/m/macd.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:macd-histogram

	macd      = EMA(fast) - EMA(slow)
	signal    = EMA(signal) of macd
	histogram = macd - signal
*/
type MACD struct {
	fast, slow, signal EMA

	value MACDValue
}

func NewMACD(fastPeriod, slowPeriod, signalPeriod int) (*MACD, error) {
	if err := checkPeriod("macd fast", fastPeriod); err != nil {
		return nil, err
	}

	if err := checkPeriod("macd slow", slowPeriod); err != nil {
		return nil, err
	}

	if err := checkPeriod("macd signal", signalPeriod); err != nil {
		return nil, err
	}

	if fastPeriod >= slowPeriod {
		return nil, invalidParameter("macd fast period %d must be less than slow period %d", fastPeriod, slowPeriod)
	}

	return &MACD{
		fast:   makeEMA(fastPeriod),
		slow:   makeEMA(slowPeriod),
		signal: makeEMA(signalPeriod),
	}, nil
}

// NewDefaultMACD returns MACD(12, 26, 9)
func NewDefaultMACD() *MACD {
	return &MACD{
		fast:   makeEMA(DefaultMACDFastPeriod),
		slow:   makeEMA(DefaultMACDSlowPeriod),
		signal: makeEMA(DefaultMACDSignalPeriod),
	}
}

func (inc *MACD) Next(v float64) MACDValue {
	macd := inc.fast.Next(v) - inc.slow.Next(v)
	signal := inc.signal.Next(macd)

	inc.value = MACDValue{
		MACD:      macd,
		Signal:    signal,
		Histogram: macd - signal,
	}
	return inc.value
}

func (inc *MACD) Last() MACDValue {
	return inc.value
}

func (inc *MACD) Reset() {
	inc.fast.Reset()
	inc.slow.Reset()
	inc.signal.Reset()
	inc.value = MACDValue{}
}

func (inc *MACD) FastPeriod() int {
	return inc.fast.Period()
}

func (inc *MACD) SlowPeriod() int {
	return inc.slow.Period()
}

func (inc *MACD) SignalPeriod() int {
	return inc.signal.Period()
}

func (inc *MACD) String() string {
	return fmt.Sprintf("MACD(%d, %d, %d)", inc.fast.Period(), inc.slow.Period(), inc.signal.Period())
}

var _ Indicator[float64, MACDValue] = &MACD{}
