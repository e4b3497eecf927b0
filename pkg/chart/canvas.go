package chart

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
)

var ErrEmptyCanvas = errors.New("nothing to render, plot a series with at least two points")

// Canvas is a line chart of indicator values.
type Canvas struct {
	chart.Chart
	Interval time.Duration
}

// NewCanvas creates a canvas, the x axis is formatted by the interval of the quotes.
// A zero interval plots against the tick index.
func NewCanvas(title string, interval time.Duration) *Canvas {
	var valueFormatter chart.ValueFormatter
	switch {
	case interval == 0:
		valueFormatter = chart.IntValueFormatter
	case interval > 24*time.Hour:
		valueFormatter = chart.TimeDateValueFormatter
	case interval > time.Hour:
		valueFormatter = chart.TimeHourValueFormatter
	default:
		valueFormatter = chart.TimeMinuteValueFormatter
	}

	out := &Canvas{
		Chart: chart.Chart{
			Title: title,
			XAxis: chart.XAxis{
				ValueFormatter: valueFormatter,
			},
		},
		Interval: interval,
	}
	out.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&out.Chart),
	}
	return out
}

// Plot adds a time series, times and values must have the same length.
func (canvas *Canvas) Plot(tag string, times []time.Time, values []float64) {
	if len(values) == 0 || len(times) != len(values) {
		return
	}

	canvas.Series = append(canvas.Series, chart.TimeSeries{
		Name:    tag,
		XValues: times,
		YValues: values,
	})
}

// PlotRaw adds a series plotted against the tick index.
func (canvas *Canvas) PlotRaw(tag string, values []float64) {
	if len(values) == 0 {
		return
	}

	x := make([]float64, len(values))
	for i := range x {
		x[i] = float64(i)
	}

	canvas.Series = append(canvas.Series, chart.ContinuousSeries{
		Name:    tag,
		XValues: x,
		YValues: values,
	})
}

// Render writes the chart as PNG.
func (canvas *Canvas) Render(w io.Writer) error {
	if !canvas.plottable() {
		return ErrEmptyCanvas
	}

	return canvas.Chart.Render(chart.PNG, w)
}

func (canvas *Canvas) plottable() bool {
	for _, s := range canvas.Series {
		if vp, ok := s.(chart.ValuesProvider); ok && vp.Len() >= 2 {
			return true
		}
	}
	return false
}
