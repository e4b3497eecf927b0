package cmd

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/tastream/pkg/cmd/cmdutil"
	"github.com/c9s/tastream/pkg/datasource/csvsource"
	"github.com/c9s/tastream/pkg/indicator"
	"github.com/c9s/tastream/pkg/types"
)

func init() {
	cmdutil.SourceFlags(ConvertCmd.Flags())
	ConvertCmd.Flags().String("output", "", "the binance formatted csv file to write")
	ConvertCmd.Flags().Bool("heikin-ashi", false, "write heikin-ashi candles instead of the source candles")
	RootCmd.AddCommand(ConvertCmd)
}

// tastream convert --csv EURUSD.csv --format metatrader --output EURUSD-binance.csv
var ConvertCmd = &cobra.Command{
	Use:   "convert --csv=path [--format=metatrader] --output=path",
	Short: "convert csv quotes into the binance csv format",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts convertOptions
		var err error

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

		opts.heikinAshi, err = cmd.Flags().GetBool("heikin-ashi")
		if err != nil {
			return err
		}

		return convert(cmd.Context(), opts)
	},
}

type convertOptions struct {
	paths      []string
	format     string
	output     string
	heikinAshi bool
}

func convert(ctx context.Context, opts convertOptions) error {
	if len(opts.paths) == 0 {
		return errors.New("--csv is required")
	}

	if opts.output == "" {
		return errors.New("--output is required")
	}

	maker, err := csvsource.ReaderMakerByFormat(opts.format)
	if err != nil {
		return err
	}

	ha := indicator.NewHeikinAshi()

	var quotes []types.Quote
	for _, path := range opts.paths {
		err := csvsource.WalkQuotesFromCSV(path, maker, func(q types.Quote) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if opts.heikinAshi {
				c := ha.Next(q)
				q.Open, q.High, q.Low, q.Close = c.Open, c.High, c.Low, c.Close
			}

			quotes = append(quotes, q)
			return nil
		})
		if err != nil {
			return err
		}
	}

	if err := csvsource.WriteQuotes(opts.output, quotes); err != nil {
		return err
	}

	log.Infof("%d quotes are written to %s", len(quotes), opts.output)
	return nil
}
