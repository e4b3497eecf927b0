package chart

import (
	"time"

	"github.com/c9s/tastream/pkg/datatype/floats"
	"github.com/c9s/tastream/pkg/indicator"
)

// Collector records the rows of an indicator set column by column, for plotting.
type Collector struct {
	columns []indicator.Column
	include map[string]bool

	times  []time.Time
	series map[string]floats.Slice
}

// NewCollector records the given columns, or all of them when include is empty.
func NewCollector(columns []indicator.Column, include ...string) *Collector {
	c := &Collector{
		columns: columns,
		series:  make(map[string]floats.Slice),
	}

	if len(include) > 0 {
		c.include = make(map[string]bool)
		for _, name := range include {
			c.include[name] = true
		}
	}

	return c
}

func (c *Collector) selected(column indicator.Column) bool {
	return c.include == nil || c.include[column.String()] || c.include[column.Indicator]
}

func (c *Collector) Add(row indicator.Row) {
	c.times = append(c.times, row.Time)
	for i, column := range c.columns {
		if i >= len(row.Values) || !c.selected(column) {
			continue
		}

		name := column.String()
		series := c.series[name]
		series.Push(row.Values[i])
		c.series[name] = series
	}
}

func (c *Collector) Len() int {
	return len(c.times)
}

// Series returns the recorded values of the column, e.g., "macd.signal".
func (c *Collector) Series(name string) floats.Slice {
	return c.series[name]
}

// ColumnStats summarizes the recorded values of one column.
type ColumnStats struct {
	Column string
	Min    float64
	Mean   float64
	Std    float64
	Max    float64
}

// Stats returns the statistics of the recorded columns in the column order.
func (c *Collector) Stats() (stats []ColumnStats) {
	for _, column := range c.columns {
		name := column.String()
		values, ok := c.series[name]
		if !ok || values.Length() == 0 {
			continue
		}

		stats = append(stats, ColumnStats{
			Column: name,
			Min:    values.Min(),
			Mean:   values.Mean(),
			Std:    values.Std(),
			Max:    values.Max(),
		})
	}
	return stats
}

// PlotTo adds the recorded series to the canvas in the column order.
func (c *Collector) PlotTo(canvas *Canvas) {
	for _, column := range c.columns {
		name := column.String()
		values, ok := c.series[name]
		if !ok {
			continue
		}

		if canvas.Interval > 0 {
			canvas.Plot(name, c.times, values)
		} else {
			canvas.PlotRaw(name, values)
		}
	}
}
