package indicator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/c9s/tastream/pkg/indicator/mocks"
	"github.com/c9s/tastream/pkg/types"
)

func TestPriceMappers(t *testing.T) {
	q := types.Quote{Open: 1, High: 4, Low: 2, Close: 3}

	tests := []struct {
		source string
		want   float64
	}{
		{"", 3},
		{"close", 3},
		{"open", 1},
		{"hl2", 3},
		{"typical", 3},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			mapper, err := ParsePriceMapper(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mapper(q))
		})
	}

	_, err := ParsePriceMapper("vwap")
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestMap(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	inner := mocks.NewMockFloat64Indicator(mockCtrl)
	gomock.InOrder(
		inner.EXPECT().Next(3.0).Return(7.0),
		inner.EXPECT().Reset(),
	)

	mapped := Map(inner, HL2)
	assert.Equal(t, 7.0, mapped.Next(types.Quote{High: 4, Low: 2, Close: 2.5}))
	mapped.Reset()
}

func TestChain(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	first := mocks.NewMockFloat64Indicator(mockCtrl)
	second := mocks.NewMockFloat64Indicator(mockCtrl)

	gomock.InOrder(
		first.EXPECT().Next(1.0).Return(2.0),
		second.EXPECT().Next(2.0).Return(5.0),
	)
	first.EXPECT().Reset().Times(1)
	second.EXPECT().Reset().Times(1)

	chained := Chain(first, second)
	assert.Equal(t, 5.0, chained.Next(1.0))
	chained.Reset()
}

func TestChain_EMAOfRSI(t *testing.T) {
	rsi, err := NewRSI(14)
	require.NoError(t, err)
	ema, err := NewEMA(5)
	require.NoError(t, err)

	chained := Chain(rsi, ema)
	assert.Equal(t, "EMA(5)(RSI(14))", chained.String())

	reference, _ := NewRSI(14)
	smoothed, _ := NewEMA(5)
	for _, p := range randomWalk(13, 100) {
		assert.InDelta(t, smoothed.Next(reference.Next(p)), chained.Next(p), epsilon)
	}
}
