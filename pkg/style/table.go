package style

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsYellowWhiteOnBlack,
	}
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return &style
}

// NewValueTable creates a table with a time column followed by the value columns.
// The value columns are right aligned.
func NewValueTable(w io.Writer, title string, columns []string) table.Writer {
	return newTable(w, title, "time", columns)
}

// NewSummaryTable creates a table with one row per indicator column.
func NewSummaryTable(w io.Writer, title string, columns []string) table.Writer {
	return newTable(w, title, "column", columns)
}

func newTable(w io.Writer, title, key string, columns []string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*NewDefaultTableStyle())
	t.SetTitle(title)

	header := table.Row{key}
	var configs []table.ColumnConfig
	for i, c := range columns {
		header = append(header, c)
		configs = append(configs, table.ColumnConfig{
			Number: i + 2,
			Align:  text.AlignRight,
		})
	}

	t.AppendHeader(header)
	t.SetColumnConfigs(configs)
	return t
}
