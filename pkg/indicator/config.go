package indicator

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/c9s/tastream/pkg/types"
)

var log = logrus.WithField("component", "indicator")

type Type string

const (
	TypeSMA             Type = "sma"
	TypeEMA             Type = "ema"
	TypeSMMA            Type = "smma"
	TypeRSI             Type = "rsi"
	TypeMACD            Type = "macd"
	TypeFastStoch       Type = "faststoch"
	TypeStoch           Type = "stoch"
	TypeStdDev          Type = "stddev"
	TypeBOLL            Type = "boll"
	TypeMaximum         Type = "max"
	TypeMinimum         Type = "min"
	TypeTrueRange       Type = "tr"
	TypeATR             Type = "atr"
	TypeROC             Type = "roc"
	TypeEfficiencyRatio Type = "er"
	TypeOBV             Type = "obv"
	TypeHeikinAshi      Type = "heikinashi"
	TypeIchimoku        Type = "ichimoku"
)

// Config describes one indicator declaratively, it's the unit of the YAML indicator list.
//
// The secondary parameters fall back to the usual defaults when they are zero:
// MACD 12/26/9, Stoch %D period 3, BOLL K 2, Ichimoku 9/26/52. Period has no default.
type Config struct {
	Type   Type `json:"type" yaml:"type"`
	Period int  `json:"period,omitempty" yaml:"period,omitempty"`

	FastPeriod   int `json:"fastPeriod,omitempty" yaml:"fastPeriod,omitempty"`
	SlowPeriod   int `json:"slowPeriod,omitempty" yaml:"slowPeriod,omitempty"`
	SignalPeriod int `json:"signalPeriod,omitempty" yaml:"signalPeriod,omitempty"`

	// DPeriod is the %D period of Stoch
	DPeriod int `json:"dPeriod,omitempty" yaml:"dPeriod,omitempty"`

	// TenkanPeriod, KijunPeriod and SenkouPeriod configure Ichimoku
	TenkanPeriod int `json:"tenkanPeriod,omitempty" yaml:"tenkanPeriod,omitempty"`
	KijunPeriod  int `json:"kijunPeriod,omitempty" yaml:"kijunPeriod,omitempty"`
	SenkouPeriod int `json:"senkouPeriod,omitempty" yaml:"senkouPeriod,omitempty"`

	// K is the band width of BOLL in standard deviations
	K float64 `json:"k,omitempty" yaml:"k,omitempty"`

	// Smoothing selects the average of RSI and of the %D line of Stoch
	Smoothing SmoothingType `json:"smoothing,omitempty" yaml:"smoothing,omitempty"`

	// Source is the price the scalar indicators read: close (default), open, hl2 or typical
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

func (c Config) Validate() error {
	_, err := Build(c)
	return err
}

func (c Config) smoothing(defaultType SmoothingType) (SmoothingType, error) {
	if c.Smoothing == "" {
		return defaultType, nil
	}
	return ParseSmoothingType(string(c.Smoothing))
}

// QuoteIndicator is the uniform shape of the indicators built from a Config: it reads
// quotes and writes one value per column.
type QuoteIndicator interface {
	Indicator[types.Quote, []float64]
	Columns() []string
	String() string
}

// quoteAdapter adapts a typed indicator to QuoteIndicator.
// The slice returned by Next is reused by the next call.
type quoteAdapter[I, O any] struct {
	name      string
	columns   []string
	indicator Indicator[I, O]
	input     func(q types.Quote) I
	output    func(o O, values []float64)
	values    []float64
}

func newQuoteAdapter[I, O any](
	name string, columns []string, indicator Indicator[I, O], input func(q types.Quote) I, output func(o O, values []float64),
) *quoteAdapter[I, O] {
	return &quoteAdapter[I, O]{
		name:      name,
		columns:   columns,
		indicator: indicator,
		input:     input,
		output:    output,
		values:    make([]float64, len(columns)),
	}
}

func (a *quoteAdapter[I, O]) Next(q types.Quote) []float64 {
	a.output(a.indicator.Next(a.input(q)), a.values)
	return a.values
}

func (a *quoteAdapter[I, O]) Reset() {
	a.indicator.Reset()
	for i := range a.values {
		a.values[i] = 0
	}
}

func (a *quoteAdapter[I, O]) Columns() []string {
	return a.columns
}

func (a *quoteAdapter[I, O]) String() string {
	return a.name
}

var valueColumns = []string{"value"}

func scalarOutput(v float64, values []float64) {
	values[0] = v
}

func highLowClose(q types.Quote) types.HighLowCloser { return q }
func closeVolume(q types.Quote) types.CloseVolumer { return q }
func ohlc(q types.Quote) types.OHLC { return q }

func scalar(indicator Float64Indicator, mapper PriceMapper) QuoteIndicator {
	return newQuoteAdapter[float64, float64](fmt.Sprint(indicator), valueColumns, indicator, mapper, scalarOutput)
}

// Build creates the indicator described by the config.
// Invalid configurations return an error wrapping ErrInvalidParameter.
func Build(c Config) (QuoteIndicator, error) {
	mapper, err := ParsePriceMapper(c.Source)
	if err != nil {
		return nil, err
	}

	ind, err := build(c, mapper)
	if err != nil {
		return nil, err
	}

	log.Debugf("built indicator %s from %+v", ind, c)
	return ind, nil
}

func build(c Config, mapper PriceMapper) (QuoteIndicator, error) {
	switch Type(strings.ToLower(string(c.Type))) {
	case TypeSMA:
		sma, err := NewSMA(c.Period)
		if err != nil {
			return nil, err
		}
		return scalar(sma, mapper), nil

	case TypeEMA:
		ema, err := NewEMA(c.Period)
		if err != nil {
			return nil, err
		}
		return scalar(ema, mapper), nil

	case TypeSMMA:
		smma, err := NewSMMA(c.Period)
		if err != nil {
			return nil, err
		}
		return scalar(smma, mapper), nil

	case TypeRSI:
		smoothing, err := c.smoothing(SmoothingEMA)
		if err != nil {
			return nil, err
		}

		rsi, err := NewRSIWithSmoothing(c.Period, smoothing)
		if err != nil {
			return nil, err
		}
		return scalar(rsi, mapper), nil

	case TypeStdDev:
		sd, err := NewStdDev(c.Period)
		if err != nil {
			return nil, err
		}
		return scalar(sd, mapper), nil

	case TypeMaximum:
		maximum, err := NewMaximum(c.Period)
		if err != nil {
			return nil, err
		}
		return scalar(maximum, mapper), nil

	case TypeMinimum:
		minimum, err := NewMinimum(c.Period)
		if err != nil {
			return nil, err
		}
		return scalar(minimum, mapper), nil

	case TypeROC:
		roc, err := NewROC(c.Period)
		if err != nil {
			return nil, err
		}
		return scalar(roc, mapper), nil

	case TypeEfficiencyRatio:
		er, err := NewEfficiencyRatio(c.Period)
		if err != nil {
			return nil, err
		}
		return scalar(er, mapper), nil

	case TypeMACD:
		macd, err := NewMACD(
			orDefault(c.FastPeriod, DefaultMACDFastPeriod),
			orDefault(c.SlowPeriod, DefaultMACDSlowPeriod),
			orDefault(c.SignalPeriod, DefaultMACDSignalPeriod),
		)
		if err != nil {
			return nil, err
		}

		return newQuoteAdapter[float64, MACDValue](macd.String(), []string{"macd", "signal", "histogram"}, macd, mapper,
			func(v MACDValue, values []float64) {
				values[0], values[1], values[2] = v.MACD, v.Signal, v.Histogram
			}), nil

	case TypeBOLL:
		k := c.K
		if k == 0 {
			k = DefaultBOLLK
		}

		boll, err := NewBOLL(c.Period, k)
		if err != nil {
			return nil, err
		}

		return newQuoteAdapter[float64, BOLLValue](boll.String(), []string{"average", "upper", "lower"}, boll, mapper,
			func(v BOLLValue, values []float64) {
				values[0], values[1], values[2] = v.Average, v.Upper, v.Lower
			}), nil

	case TypeFastStoch:
		stoch, err := NewFastStoch(c.Period)
		if err != nil {
			return nil, err
		}
		return newQuoteAdapter[types.HighLowCloser, float64](stoch.String(), valueColumns, stoch, highLowClose, scalarOutput), nil

	case TypeStoch:
		smoothing, err := c.smoothing(SmoothingSMA)
		if err != nil {
			return nil, err
		}

		stoch, err := NewStochWithSmoothing(c.Period, orDefault(c.DPeriod, DefaultStochDPeriod), smoothing)
		if err != nil {
			return nil, err
		}

		return newQuoteAdapter[types.HighLowCloser, StochValue](stoch.String(), []string{"k", "d"}, stoch, highLowClose,
			func(v StochValue, values []float64) {
				values[0], values[1] = v.K, v.D
			}), nil

	case TypeTrueRange:
		tr := NewTrueRange()
		return newQuoteAdapter[types.HighLowCloser, float64](tr.String(), valueColumns, tr, highLowClose, scalarOutput), nil

	case TypeATR:
		atr, err := NewATR(c.Period)
		if err != nil {
			return nil, err
		}
		return newQuoteAdapter[types.HighLowCloser, float64](atr.String(), valueColumns, atr, highLowClose, scalarOutput), nil

	case TypeIchimoku:
		ichimoku, err := NewIchimoku(
			orDefault(c.TenkanPeriod, DefaultIchimokuTenkanPeriod),
			orDefault(c.KijunPeriod, DefaultIchimokuKijunPeriod),
			orDefault(c.SenkouPeriod, DefaultIchimokuSenkouPeriod),
		)
		if err != nil {
			return nil, err
		}

		columns := []string{"tenkan", "kijun", "spanA", "spanB", "chikou", "kumo"}
		return newQuoteAdapter[types.HighLowCloser, IchimokuValue](ichimoku.String(), columns, ichimoku, highLowClose,
			func(v IchimokuValue, values []float64) {
				values[0], values[1], values[2], values[3], values[4] = v.Tenkan, v.Kijun, v.SpanA, v.SpanB, v.Chikou
				values[5] = float64(v.Color)
			}), nil

	case TypeOBV:
		obv := NewOBV()
		return newQuoteAdapter[types.CloseVolumer, float64](obv.String(), valueColumns, obv, closeVolume, scalarOutput), nil

	case TypeHeikinAshi:
		ha := NewHeikinAshi()
		return newQuoteAdapter[types.OHLC, HeikinAshiCandle](ha.String(), []string{"open", "high", "low", "close"}, ha, ohlc,
			func(v HeikinAshiCandle, values []float64) {
				values[0], values[1], values[2], values[3] = v.Open, v.High, v.Low, v.Close
			}), nil
	}

	return nil, invalidParameter("unknown indicator type %q", c.Type)
}

func orDefault(v, defaultValue int) int {
	if v == 0 {
		return defaultValue
	}
	return v
}
