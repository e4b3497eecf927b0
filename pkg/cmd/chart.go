package cmd

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/tastream/pkg/chart"
	"github.com/c9s/tastream/pkg/cmd/cmdutil"
	"github.com/c9s/tastream/pkg/indicator"
	"github.com/c9s/tastream/pkg/types"
)

func init() {
	cmdutil.SourceFlags(ChartCmd.Flags())
	ChartCmd.Flags().String("output", "chart.png", "the png file to write")
	ChartCmd.Flags().String("title", "", "the chart title, defaults to the config file name")
	ChartCmd.Flags().StringSlice("column", nil, "the columns to plot, e.g. rsi or macd.signal, all of them by default")
	RootCmd.AddCommand(ChartCmd)
}

// tastream chart --config indicators.yaml --column rsi --output rsi.png
var ChartCmd = &cobra.Command{
	Use:   "chart [--config=indicators.yaml] [--column=name] [--output=chart.png]",
	Short: "plot the indicator values of csv quotes into a png file",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts chartOptions
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

		opts.output, err = cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		opts.title, err = cmd.Flags().GetString("title")
		if err != nil {
			return err
		}

		opts.columns, err = cmd.Flags().GetStringSlice("column")
		if err != nil {
			return err
		}

		return plot(cmd.Context(), opts)
	},
}

type chartOptions struct {
	sourceOptions

	output  string
	title   string
	columns []string
}

func plot(ctx context.Context, opts chartOptions) error {
	s, err := newSession(opts.sourceOptions)
	if err != nil {
		return err
	}

	collector := chart.NewCollector(s.set.Columns(), opts.columns...)

	var first, second time.Time
	count, err := s.replay(ctx, func(q types.Quote, row indicator.Row) error {
		switch collector.Len() {
		case 0:
			first = q.Time
		case 1:
			second = q.Time
		}

		collector.Add(row)
		return nil
	})
	if err != nil {
		return err
	}

	title := opts.title
	if title == "" {
		title = opts.configFile
	}

	canvas := chart.NewCanvas(title, quoteInterval(first, second))
	collector.PlotTo(canvas)

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := canvas.Render(f); err != nil {
		return errors.Wrapf(err, "can not render %s", opts.output)
	}

	log.Infof("plotted %d quotes into %s", count, opts.output)
	return nil
}

// quoteInterval guesses the bar interval from the first two quotes, 0 when the quotes carry no time.
func quoteInterval(first, second time.Time) time.Duration {
	if first.IsZero() || second.IsZero() || !second.After(first) {
		return 0
	}
	return second.Sub(first)
}
