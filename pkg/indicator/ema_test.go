package indicator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEMA_Next(t *testing.T) {
	// alpha = 2 / (3 + 1) = 0.5
	ema, err := NewEMA(3)
	require.NoError(t, err)

	assert.Equal(t, 2.0, ema.Next(2), "the first output is the first input")
	assert.InDelta(t, 3.0, ema.Next(4), epsilon)
	assert.InDelta(t, 4.5, ema.Next(6), epsilon)
	assert.Equal(t, 3, ema.Count())
	assert.InDelta(t, 4.5, ema.Last(), epsilon)
}

func TestEMA_Recurrence(t *testing.T) {
	prices := randomWalk(3, 200)
	ema, err := NewEMA(10)
	require.NoError(t, err)

	alpha := 2.0 / 11.0
	want := prices[0]
	for i, p := range prices {
		if i > 0 {
			want = alpha*p + (1-alpha)*want
		}
		assert.InDelta(t, want, ema.Next(p), epsilon, "tick %d", i)
	}
}

func TestEMA_Constant(t *testing.T) {
	ema, err := NewEMA(5)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		assert.InDelta(t, 42.0, ema.Next(42.0), epsilon)
	}
}

func TestEMA_InvalidPeriod(t *testing.T) {
	_, err := NewEMA(0)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestEMA_Reset(t *testing.T) {
	ema, err := NewEMA(4)
	require.NoError(t, err)

	ema.Next(10)
	ema.Next(20)
	ema.Reset()

	assert.Equal(t, 0, ema.Count())
	assert.Equal(t, 5.0, ema.Next(5), "the first input after a reset seeds the average")
	assert.Equal(t, "EMA(4)", ema.String())
}

func TestSMMA_Next(t *testing.T) {
	smma, err := NewSMMA(3)
	require.NoError(t, err)

	assert.Equal(t, 3.0, smma.Next(3))
	// (3 * 2 + 6) / 3
	assert.InDelta(t, 4.0, smma.Next(6), epsilon)
	// (4 * 2 + 10) / 3
	assert.InDelta(t, 6.0, smma.Next(10), epsilon)

	smma.Reset()
	assert.Equal(t, 1.0, smma.Next(1))
	assert.Equal(t, "SMMA(3)", smma.String())

	_, err = NewSMMA(-3)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestMovingAverage(t *testing.T) {
	tests := []struct {
		smoothing SmoothingType
		want      string
	}{
		{SmoothingSMA, "SMA(5)"},
		{SmoothingEMA, "EMA(5)"},
		{SmoothingWilder, "SMMA(5)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.smoothing), func(t *testing.T) {
			ma, err := NewMovingAverage(tt.smoothing, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ma.(interface{ String() string }).String())
		})
	}

	_, err := NewMovingAverage("hull", 5)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = NewMovingAverage(SmoothingSMA, 0)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestParseSmoothingType(t *testing.T) {
	tests := []struct {
		input   string
		want    SmoothingType
		wantErr bool
	}{
		{"sma", SmoothingSMA, false},
		{" EMA ", SmoothingEMA, false},
		{"wilder", SmoothingWilder, false},
		{"rma", SmoothingWilder, false},
		{"smma", SmoothingWilder, false},
		{"wma", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSmoothingType(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidParameter))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
