package indicator

import (
	"math"
	"math/rand"
	"time"

	"github.com/c9s/tastream/pkg/types"
)

const epsilon = 1e-9

// randomWalk returns n prices starting from 100, the seed keeps the tests reproducible.
func randomWalk(seed int64, n int) []float64 {
	r := rand.New(rand.NewSource(seed))
	prices := make([]float64, n)
	price := 100.0
	for i := range prices {
		price = math.Max(1.0, price+r.NormFloat64()*2.0)
		prices[i] = price
	}
	return prices
}

// randomQuotes builds consistent bars around a random walk of closes.
func randomQuotes(seed int64, n int) []types.Quote {
	r := rand.New(rand.NewSource(seed))
	closes := randomWalk(seed, n)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	quotes := make([]types.Quote, n)
	for i, c := range closes {
		open := c
		if i > 0 {
			open = closes[i-1]
		}

		quotes[i] = types.Quote{
			Time:   start.Add(time.Duration(i) * time.Minute),
			Open:   open,
			High:   math.Max(open, c) + r.Float64(),
			Low:    math.Max(0, math.Min(open, c)-r.Float64()),
			Close:  c,
			Volume: r.Float64() * 1000.0,
		}
	}
	return quotes
}

func hlc(high, low, c float64) types.Quote {
	return types.Quote{Open: c, High: high, Low: low, Close: c}
}

func priceQuotes(prices ...float64) []types.Quote {
	quotes := make([]types.Quote, len(prices))
	for i, p := range prices {
		quotes[i] = types.NewPriceQuote(p)
	}
	return quotes
}

func feed(ind Float64Indicator, values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = ind.Next(v)
	}
	return out
}
