package indicator

import (
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/tastream/pkg/types"
)

var ErrDuplicateName = errors.New("duplicate indicator name")

// Column identifies one output value of a Set.
type Column struct {
	Indicator string
	Name      string
}

// String returns the indicator name for the single value indicators, and "indicator.column" otherwise.
func (c Column) String() string {
	if c.Name == "value" {
		return c.Indicator
	}
	return c.Indicator + "." + c.Name
}

// Row holds the values of every column of a Set for one quote.
type Row struct {
	Time   time.Time
	Values []float64
}

type setEntry struct {
	name      string
	indicator QuoteIndicator
}

// Set is an ordered collection of named indicators fed by the same quote stream.
type Set struct {
	entries []setEntry
	columns []Column
}

func NewSet() *Set {
	return &Set{}
}

func (s *Set) Add(name string, indicator QuoteIndicator) error {
	for _, e := range s.entries {
		if e.name == name {
			return errors.Wrapf(ErrDuplicateName, "indicator %q", name)
		}
	}

	s.entries = append(s.entries, setEntry{name: name, indicator: indicator})
	for _, column := range indicator.Columns() {
		s.columns = append(s.columns, Column{Indicator: name, Name: column})
	}
	return nil
}

// Next updates every indicator with the quote, the values are laid out in the Columns order.
func (s *Set) Next(q types.Quote) Row {
	row := Row{
		Time:   q.Time,
		Values: make([]float64, 0, len(s.columns)),
	}

	for _, e := range s.entries {
		row.Values = append(row.Values, e.indicator.Next(q)...)
	}

	return row
}

func (s *Set) Reset() {
	for _, e := range s.entries {
		e.indicator.Reset()
	}
}

func (s *Set) Columns() []Column {
	return s.columns
}

// Names returns the indicator names in the order they were added.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		names = append(names, e.name)
	}
	return names
}

func (s *Set) Len() int {
	return len(s.entries)
}

// Get returns the indicator registered with the name
func (s *Set) Get(name string) (QuoteIndicator, bool) {
	for _, e := range s.entries {
		if e.name == name {
			return e.indicator, true
		}
	}
	return nil, false
}

var _ Indicator[types.Quote, Row] = &Set{}
