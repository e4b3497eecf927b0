package csvsource

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/tastream/pkg/types"
)

func TestValueWriter(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewValueWriter(&buf, []string{"RSI(14)", "macd.signal"})
	require.NoError(t, err)

	ts := time.UnixMilli(1609459200000)
	require.NoError(t, w.Write(ts, []float64{50, -1.25}))
	require.NoError(t, w.Write(ts.Add(time.Hour), []float64{62.5, 0.5}))
	require.NoError(t, w.Flush())

	assert.Equal(t, "time,RSI(14),macd.signal\n"+
		"1609459200000,50,-1.25\n"+
		"1609462800000,62.5,0.5\n", buf.String())
}

func TestValueWriter_ColumnMismatch(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewValueWriter(&buf, []string{"a", "b"})
	require.NoError(t, err)

	assert.Error(t, w.Write(time.Now(), []float64{1}))
}

func TestWriteQuotes(t *testing.T) {
	quotes, err := ReadQuotesFromCSV("./testdata/binance/BTCUSDT-1h-2021-01-01.csv")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "BTCUSDT.csv")
	require.NoError(t, WriteQuotes(path, quotes))

	written, err := ReadQuotesFromCSV(path)
	require.NoError(t, err)
	assert.Equal(t, quotes, written)
}

func TestWriteQuotes_Empty(t *testing.T) {
	assert.Error(t, WriteQuotes(filepath.Join(t.TempDir(), "empty.csv"), []types.Quote{}))
}
