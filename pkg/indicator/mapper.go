package indicator

import (
	"fmt"

	"github.com/c9s/tastream/pkg/types"
)

// PriceMapper picks the scalar a price indicator consumes from a quote.
type PriceMapper func(q types.Quote) float64

func ClosePrice(q types.Quote) float64 {
	return q.Close
}

func OpenPrice(q types.Quote) float64 {
	return q.Open
}

// HL2 is the middle of the high low range
func HL2(q types.Quote) float64 {
	return q.Mid()
}

func TypicalPrice(q types.Quote) float64 {
	return (q.High + q.Low + q.Close) / 3.
}

func ParsePriceMapper(s string) (PriceMapper, error) {
	switch s {
	case "", "close":
		return ClosePrice, nil
	case "open":
		return OpenPrice, nil
	case "hl2", "median":
		return HL2, nil
	case "typical", "hlc3":
		return TypicalPrice, nil
	}

	return nil, invalidParameter("unknown price source %q", s)
}

// Mapped lifts a scalar indicator onto quotes.
type Mapped struct {
	indicator Float64Indicator
	mapper    PriceMapper
}

func Map(indicator Float64Indicator, mapper PriceMapper) *Mapped {
	return &Mapped{indicator: indicator, mapper: mapper}
}

func (m *Mapped) Next(q types.Quote) float64 {
	return m.indicator.Next(m.mapper(q))
}

func (m *Mapped) Reset() {
	m.indicator.Reset()
}

func (m *Mapped) String() string {
	return fmt.Sprint(m.indicator)
}

// Chained feeds the output of the first indicator into the second one, e.g., EMA of RSI.
type Chained struct {
	first, second Float64Indicator
}

func Chain(first, second Float64Indicator) *Chained {
	return &Chained{first: first, second: second}
}

func (c *Chained) Next(v float64) float64 {
	return c.second.Next(c.first.Next(v))
}

func (c *Chained) Reset() {
	c.first.Reset()
	c.second.Reset()
}

func (c *Chained) String() string {
	return fmt.Sprintf("%v(%v)", c.second, c.first)
}

var _ Indicator[types.Quote, float64] = &Mapped{}
var _ Float64Indicator = &Chained{}
