package types

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidQuote is returned when the OHLCV fields of a quote are not consistent with each other.
	ErrInvalidQuote = errors.New("invalid quote")
)

// Closer is the narrowest input model: a data point that carries a close price.
type Closer interface {
	GetClose() float64
}

// HighLowCloser is required by the range based indicators (stochastic, true range).
type HighLowCloser interface {
	Closer
	GetHigh() float64
	GetLow() float64
}

// CloseVolumer is required by the volume based indicators.
type CloseVolumer interface {
	Closer
	GetVolume() float64
}

// OHLC is required by the candle transforms, e.g., Heikin-Ashi.
type OHLC interface {
	HighLowCloser
	GetOpen() float64
}

// Quote is one market data point (a price bar). It's a plain value and
// indicators never keep a reference to it after Next returns.
type Quote struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// NewPriceQuote builds a quote from a single price, all the OHLC fields are set to the price.
func NewPriceQuote(price float64) Quote {
	return Quote{Open: price, High: price, Low: price, Close: price}
}

func (q Quote) GetOpen() float64   { return q.Open }
func (q Quote) GetHigh() float64   { return q.High }
func (q Quote) GetLow() float64    { return q.Low }
func (q Quote) GetClose() float64  { return q.Close }
func (q Quote) GetVolume() float64 { return q.Volume }

// Mid returns the middle of the high low range
func (q Quote) Mid() float64 {
	return (q.High + q.Low) / 2.0
}

// Validate checks the bar invariants: the low is the lowest and the high is the highest price,
// prices and volume are not negative.
func (q Quote) Validate() error {
	switch {
	case q.Low < 0:
		return errors.Wrapf(ErrInvalidQuote, "low %f is negative", q.Low)
	case q.Volume < 0:
		return errors.Wrapf(ErrInvalidQuote, "volume %f is negative", q.Volume)
	case q.High < q.Low:
		return errors.Wrapf(ErrInvalidQuote, "high %f is lower than low %f", q.High, q.Low)
	case q.Open < q.Low || q.Open > q.High:
		return errors.Wrapf(ErrInvalidQuote, "open %f is out of the range [%f, %f]", q.Open, q.Low, q.High)
	case q.Close < q.Low || q.Close > q.High:
		return errors.Wrapf(ErrInvalidQuote, "close %f is out of the range [%f, %f]", q.Close, q.Low, q.High)
	}

	return nil
}

func (q Quote) String() string {
	return fmt.Sprintf("Quote %s O: %.4f H: %.4f L: %.4f C: %.4f V: %.4f",
		q.Time.Format(time.RFC3339), q.Open, q.High, q.Low, q.Close, q.Volume)
}

var _ OHLC = Quote{}
var _ CloseVolumer = Quote{}
