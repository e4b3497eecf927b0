package indicator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMACD_Invalid(t *testing.T) {
	tests := []struct {
		name               string
		fast, slow, signal int
	}{
		{"fast equals slow", 12, 12, 9},
		{"fast above slow", 26, 12, 9},
		{"zero fast", 0, 26, 9},
		{"zero signal", 12, 26, 0},
		{"negative slow", 12, -26, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMACD(tt.fast, tt.slow, tt.signal)
			assert.True(t, errors.Is(err, ErrInvalidParameter))
		})
	}
}

func TestMACD_CrossCheck(t *testing.T) {
	macd, err := NewMACD(12, 26, 9)
	require.NoError(t, err)

	fast, _ := NewEMA(12)
	slow, _ := NewEMA(26)
	signal, _ := NewEMA(9)

	for i, p := range randomWalk(6, 300) {
		got := macd.Next(p)

		want := fast.Next(p) - slow.Next(p)
		assert.InDelta(t, want, got.MACD, epsilon, "tick %d", i)
		assert.InDelta(t, signal.Next(want), got.Signal, epsilon, "tick %d", i)
		assert.InDelta(t, got.MACD-got.Signal, got.Histogram, epsilon, "tick %d", i)
	}
}

func TestMACD_FirstTick(t *testing.T) {
	macd := NewDefaultMACD()

	// both averages are seeded with the first price
	assert.Equal(t, MACDValue{}, macd.Next(100))
	assert.Equal(t, "MACD(12, 26, 9)", macd.String())
}

func TestMACD_ResetReplay(t *testing.T) {
	prices := randomWalk(7, 100)
	macd, err := NewMACD(3, 10, 4)
	require.NoError(t, err)

	var first []MACDValue
	for _, p := range prices {
		first = append(first, macd.Next(p))
	}

	macd.Reset()
	for i, p := range prices {
		assert.Equal(t, first[i], macd.Next(p))
	}

	assert.Equal(t, 3, macd.FastPeriod())
	assert.Equal(t, 10, macd.SlowPeriod())
	assert.Equal(t, 4, macd.SignalPeriod())
}
