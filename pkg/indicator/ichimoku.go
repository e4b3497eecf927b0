package indicator

import (
	"fmt"

	"github.com/c9s/tastream/pkg/types"
)

const (
	DefaultIchimokuTenkanPeriod = 9
	DefaultIchimokuKijunPeriod  = 26
	DefaultIchimokuSenkouPeriod = 52
)

// KumoColor is the color of the cloud between the two leading spans.
type KumoColor int

const (
	KumoRed   KumoColor = -1
	KumoGreen KumoColor = 1
)

func (c KumoColor) String() string {
	if c == KumoGreen {
		return "green"
	}
	return "red"
}

// IchimokuValue is the output of one Ichimoku tick. The spans are the values as of the
// current bar, plotting them ahead (and the chikou behind) is left to the caller.
type IchimokuValue struct {
	Tenkan float64   `json:"tenkan"`
	Kijun  float64   `json:"kijun"`
	SpanA  float64   `json:"spanA"`
	SpanB  float64   `json:"spanB"`
	Chikou float64   `json:"chikou"`
	Color  KumoColor `json:"color"`
}

// midpoint is (highest high + lowest low) / 2 over a window of bars.
type midpoint struct {
	highs types.MonotonicQueue
	lows  types.MonotonicQueue
}

func makeMidpoint(period int) midpoint {
	return midpoint{
		highs: types.MakeMonotonicQueue(period, types.ExtremumMax),
		lows:  types.MakeMonotonicQueue(period, types.ExtremumMin),
	}
}

func (m *midpoint) next(high, low float64) float64 {
	return (m.highs.Push(high) + m.lows.Push(low)) / 2.0
}

func (m *midpoint) reset() {
	m.highs.Reset()
	m.lows.Reset()
}

/*
ichimoku implements the Ichimoku Kinko Hyo indicator

Ichimoku Cloud
- https://www.investopedia.com/terms/i/ichimoku-cloud.asp

	tenkan = midpoint of the last tenkan bars
	kijun  = midpoint of the last kijun bars
	span A = (tenkan + kijun) / 2
	span B = midpoint of the last senkou bars
	chikou = close

The cloud is green when span A is above span B and red otherwise. Until senkou bars
are seen the windows cover the bars seen so far and Ready reports false.
*/
type Ichimoku struct {
	tenkanPeriod, kijunPeriod, senkouPeriod int

	tenkan, kijun, senkou midpoint

	count int
	value IchimokuValue
}

func NewIchimoku(tenkanPeriod, kijunPeriod, senkouPeriod int) (*Ichimoku, error) {
	if err := checkPeriod("ichimoku tenkan", tenkanPeriod); err != nil {
		return nil, err
	}

	if tenkanPeriod >= kijunPeriod || kijunPeriod >= senkouPeriod {
		return nil, invalidParameter("ichimoku periods must be increasing, got tenkan %d kijun %d senkou %d",
			tenkanPeriod, kijunPeriod, senkouPeriod)
	}

	return &Ichimoku{
		tenkanPeriod: tenkanPeriod,
		kijunPeriod:  kijunPeriod,
		senkouPeriod: senkouPeriod,
		tenkan:       makeMidpoint(tenkanPeriod),
		kijun:        makeMidpoint(kijunPeriod),
		senkou:       makeMidpoint(senkouPeriod),
	}, nil
}

func (inc *Ichimoku) Next(q types.HighLowCloser) IchimokuValue {
	high, low := q.GetHigh(), q.GetLow()

	v := IchimokuValue{
		Tenkan: inc.tenkan.next(high, low),
		Kijun:  inc.kijun.next(high, low),
		SpanB:  inc.senkou.next(high, low),
		Chikou: q.GetClose(),
		Color:  KumoRed,
	}
	v.SpanA = (v.Tenkan + v.Kijun) / 2.0
	if v.SpanA > v.SpanB {
		v.Color = KumoGreen
	}

	if inc.count < inc.senkouPeriod {
		inc.count++
	}

	inc.value = v
	return v
}

func (inc *Ichimoku) Last() IchimokuValue {
	return inc.value
}

// Ready reports whether every window is filled.
func (inc *Ichimoku) Ready() bool {
	return inc.count >= inc.senkouPeriod
}

func (inc *Ichimoku) Reset() {
	inc.tenkan.reset()
	inc.kijun.reset()
	inc.senkou.reset()
	inc.count = 0
	inc.value = IchimokuValue{}
}

func (inc *Ichimoku) String() string {
	return fmt.Sprintf("Ichimoku(%d, %d, %d)", inc.tenkanPeriod, inc.kijunPeriod, inc.senkouPeriod)
}

var _ Indicator[types.HighLowCloser, IchimokuValue] = &Ichimoku{}
