package chart

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/tastream/pkg/indicator"
	"github.com/c9s/tastream/pkg/types"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestCanvas_RenderRaw(t *testing.T) {
	canvas := NewCanvas("raw", 0)
	canvas.PlotRaw("sma", []float64{1, 2, 3, 2, 1})

	var buf bytes.Buffer
	require.NoError(t, canvas.Render(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestCanvas_RenderEmpty(t *testing.T) {
	canvas := NewCanvas("empty", time.Hour)
	canvas.PlotRaw("nothing", nil)
	canvas.Plot("mismatch", []time.Time{time.Now()}, []float64{1, 2})

	assert.ErrorIs(t, canvas.Render(&bytes.Buffer{}), ErrEmptyCanvas)
}

func TestCollector_PlotTo(t *testing.T) {
	set := indicator.NewSet()
	sma, err := indicator.Build(indicator.Config{Type: indicator.TypeSMA, Period: 2})
	require.NoError(t, err)
	require.NoError(t, set.Add("sma", sma))

	macd, err := indicator.Build(indicator.Config{Type: indicator.TypeMACD, FastPeriod: 2, SlowPeriod: 4, SignalPeriod: 2})
	require.NoError(t, err)
	require.NoError(t, set.Add("macd", macd))

	collector := NewCollector(set.Columns(), "sma", "macd.histogram")

	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, price := range []float64{10, 12, 11, 13, 15, 14} {
		q := types.NewPriceQuote(price)
		q.Time = start.Add(time.Duration(i) * time.Hour)
		collector.Add(set.Next(q))
	}

	assert.Equal(t, 6, collector.Len())
	assert.Len(t, collector.Series("sma"), 6)
	assert.Len(t, collector.Series("macd.histogram"), 6)
	assert.Empty(t, collector.Series("macd.signal"))

	canvas := NewCanvas("BTCUSDT", time.Hour)
	collector.PlotTo(canvas)
	require.Len(t, canvas.Series, 2)
	assert.Equal(t, "sma", canvas.Series[0].GetName())

	var buf bytes.Buffer
	require.NoError(t, canvas.Render(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestCollector_Stats(t *testing.T) {
	set := indicator.NewSet()
	sma, err := indicator.Build(indicator.Config{Type: indicator.TypeSMA, Period: 1})
	require.NoError(t, err)
	require.NoError(t, set.Add("close", sma))

	collector := NewCollector(set.Columns())
	for _, price := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		collector.Add(set.Next(types.NewPriceQuote(price)))
	}

	stats := collector.Stats()
	require.Len(t, stats, 1)
	assert.Equal(t, "close", stats[0].Column)
	assert.Equal(t, 2.0, stats[0].Min)
	assert.Equal(t, 9.0, stats[0].Max)
	assert.InDelta(t, 5.0, stats[0].Mean, 1e-9)
	assert.InDelta(t, 2.0, stats[0].Std, 1e-9)
}
