package style

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
)

// DefaultPrecision is the number of decimals of the indicator values in the tables.
const DefaultPrecision = 4

// ChangeColors colors a value by its direction against the previous one.
func ChangeColors(current, previous float64) text.Colors {
	switch {
	case current > previous:
		return text.Colors{text.FgGreen}
	case current < previous:
		return text.Colors{text.FgRed}
	}
	return text.Colors{}
}

func FormatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
