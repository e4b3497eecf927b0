package indicator

import (
	"math"

	"github.com/c9s/tastream/pkg/types"
)

type HeikinAshiColor string

const (
	HeikinAshiGreen HeikinAshiColor = "green"
	HeikinAshiRed   HeikinAshiColor = "red"
)

type HeikinAshiCandle struct {
	Open  float64         `json:"open"`
	High  float64         `json:"high"`
	Low   float64         `json:"low"`
	Close float64         `json:"close"`
	Color HeikinAshiColor `json:"color"`
}

// HeikinAshi transforms the candles into Heikin-Ashi candles:
//
//	open  = (previous HA open + previous HA close) / 2
//	close = (open + high + low + close) / 4
//
// The first HA open is the close of the first candle.
type HeikinAshi struct {
	previous HeikinAshiCandle
	seen     bool
}

func NewHeikinAshi() *HeikinAshi {
	return &HeikinAshi{}
}

func (inc *HeikinAshi) Next(q types.OHLC) HeikinAshiCandle {
	open := q.GetClose()
	if inc.seen {
		open = (inc.previous.Open + inc.previous.Close) / 2.0
	}

	closePrice := (q.GetOpen() + q.GetHigh() + q.GetLow() + q.GetClose()) / 4.0

	candle := HeikinAshiCandle{
		Open:  open,
		Close: closePrice,
		High:  math.Max(q.GetHigh(), math.Max(open, closePrice)),
		Low:   math.Min(q.GetLow(), math.Min(open, closePrice)),
		Color: HeikinAshiRed,
	}

	if open < closePrice {
		candle.Color = HeikinAshiGreen
	}

	inc.previous = candle
	inc.seen = true
	return candle
}

func (inc *HeikinAshi) Reset() {
	inc.previous = HeikinAshiCandle{}
	inc.seen = false
}

func (inc *HeikinAshi) String() string {
	return "HA()"
}

var _ Indicator[types.OHLC, HeikinAshiCandle] = &HeikinAshi{}
