package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/tastream/pkg/chart"
	"github.com/c9s/tastream/pkg/cmd/cmdutil"
	"github.com/c9s/tastream/pkg/datasource/csvsource"
	"github.com/c9s/tastream/pkg/indicator"
	"github.com/c9s/tastream/pkg/metrics"
	"github.com/c9s/tastream/pkg/style"
	"github.com/c9s/tastream/pkg/types"
)

func init() {
	cmdutil.SourceFlags(ReplayCmd.Flags())
	ReplayCmd.Flags().Int("last", 20, "print only the last n rows, 0 prints every row")
	ReplayCmd.Flags().Int("precision", style.DefaultPrecision, "decimals of the printed values")
	ReplayCmd.Flags().String("metrics-textfile", "", "write the final indicator values as prometheus metrics into this file")
	ReplayCmd.Flags().String("export", "", "write every row into this csv file")
	ReplayCmd.Flags().Bool("summary", false, "print the min, mean, standard deviation and max of every column")
	RootCmd.AddCommand(ReplayCmd)
}

// tastream replay --config indicators.yaml --csv BTCUSDT-1h.csv --last 10
var ReplayCmd = &cobra.Command{
	Use:   "replay [--config=indicators.yaml] [--csv=path] [--last=20]",
	Short: "replay the quotes of csv files through the configured indicators",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts replayOptions
		var err error

		opts.configFile = viper.GetString("config")
		opts.paths, err = cmd.Flags().GetStringSlice("csv")
		if err != nil {
			return err
		}

		opts.format, err = cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		opts.last, err = cmd.Flags().GetInt("last")
		if err != nil {
			return err
		}

		opts.precision, err = cmd.Flags().GetInt("precision")
		if err != nil {
			return err
		}

		opts.metricsTextfile, err = cmd.Flags().GetString("metrics-textfile")
		if err != nil {
			return err
		}

		opts.export, err = cmd.Flags().GetString("export")
		if err != nil {
			return err
		}

		opts.summary, err = cmd.Flags().GetBool("summary")
		if err != nil {
			return err
		}

		return replay(cmd.Context(), opts, cmd.OutOrStdout())
	},
}

type replayOptions struct {
	sourceOptions

	last            int
	precision       int
	metricsTextfile string
	export          string
	summary         bool
}

func replay(ctx context.Context, opts replayOptions, out io.Writer) (err error) {
	s, err := newSession(opts.sourceOptions)
	if err != nil {
		return err
	}

	columns := s.set.Columns()
	var names []string
	for _, c := range columns {
		names = append(names, c.String())
	}

	var exporter *csvsource.ValueWriter
	if opts.export != "" {
		f, createErr := os.Create(opts.export)
		if createErr != nil {
			return errors.Wrap(createErr, "failed to create the export file")
		}

		defer func() {
			if e := f.Close(); e != nil && err == nil {
				err = e
			}
		}()

		exporter, err = csvsource.NewValueWriter(f, names)
		if err != nil {
			return err
		}
	}

	collector := chart.NewCollector(columns)

	var rows []table.Row
	var previous []float64
	count, err := s.replay(ctx, func(q types.Quote, row indicator.Row) error {
		if opts.metricsTextfile != "" {
			metrics.Observe(columns, row)
		}

		if exporter != nil {
			if err := exporter.Write(row.Time, row.Values); err != nil {
				return err
			}
		}

		if opts.summary {
			collector.Add(row)
		}

		rows = append(rows, formatRow(q, row, previous, opts.precision))
		if opts.last > 0 && len(rows) > opts.last {
			rows = rows[1:]
		}

		previous = row.Values
		return nil
	})
	if err != nil {
		return err
	}

	if exporter != nil {
		if err := exporter.Flush(); err != nil {
			return err
		}
		log.Infof("%d rows are exported to %s", count, opts.export)
	}

	t := style.NewValueTable(out, fmt.Sprintf("%d quotes", count), names)
	t.AppendRows(rows)
	t.Render()

	if opts.summary {
		renderSummary(out, collector.Stats(), opts.precision)
	}

	log.Infof("replayed %d quotes through %d indicators", count, s.set.Len())

	if opts.metricsTextfile != "" {
		if err := metrics.WriteTextfile(opts.metricsTextfile); err != nil {
			return err
		}
		log.Infof("metrics are written to %s", opts.metricsTextfile)
	}

	return nil
}

func renderSummary(out io.Writer, stats []chart.ColumnStats, precision int) {
	t := style.NewSummaryTable(out, "summary", []string{"min", "mean", "std", "max"})
	for _, s := range stats {
		t.AppendRow(table.Row{
			s.Column,
			style.FormatValue(s.Min, precision),
			style.FormatValue(s.Mean, precision),
			style.FormatValue(s.Std, precision),
			style.FormatValue(s.Max, precision),
		})
	}
	t.Render()
}

func formatRow(q types.Quote, row indicator.Row, previous []float64, precision int) table.Row {
	r := table.Row{q.Time.Format(time.RFC3339)}
	for i, v := range row.Values {
		s := style.FormatValue(v, precision)
		if i < len(previous) {
			s = style.ChangeColors(v, previous[i]).Sprint(s)
		}
		r = append(r, s)
	}
	return r
}
