package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/c9s/tastream/pkg/cmd/cmdutil"
	"github.com/c9s/tastream/pkg/envvar"
	"github.com/c9s/tastream/pkg/style"
)

func init() {
	cmdutil.SourceFlags(ValidateCmd.Flags())
	ValidateCmd.Flags().Bool("no-color", false, "print without colors")
	RootCmd.AddCommand(ValidateCmd)
}

// tastream validate --config indicators.yaml
var ValidateCmd = &cobra.Command{
	Use:   "validate [--config=indicators.yaml]",
	Short: "validate the config file and print the indicator columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts sourceOptions
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

		noColor, err := cmd.Flags().GetBool("no-color")
		if err != nil {
			return err
		}

		return validate(opts, cmd.OutOrStdout(), colorEnabled(noColor))
	},
}

// EnvNoColor turns the colors off like --no-color, an explicit false turns them back on.
const EnvNoColor = envvar.Prefix + "NO_COLOR"

func colorEnabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}

	noColor := false
	envvar.SetBool(EnvNoColor, &noColor)
	return !noColor
}

func validate(opts sourceOptions, out io.Writer, withColor bool) error {
	var write, warn func(io.Writer, string, ...interface{})
	if withColor {
		write = color.New(color.FgHiYellow).FprintfFunc()
		warn = color.New(color.FgHiRed).FprintfFunc()
	} else {
		write = func(w io.Writer, format string, args ...interface{}) {
			fmt.Fprintf(w, format, args...)
		}
		warn = write
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		errs := multierr.Errors(err)
		warn(out, "---- %s: %d error(s) ---\n", opts.configFile, len(errs))
		for _, e := range errs {
			warn(out, "  %v\n", e)
		}
		return errors.Errorf("invalid config %s", opts.configFile)
	}

	set, err := cfg.BuildSet()
	if err != nil {
		return err
	}

	write(out, "---- %s: %d indicator(s), source %s ---\n",
		opts.configFile, set.Len(), strings.Join(cfg.Source.Paths, ", "))

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(*style.NewDefaultTableStyle())
	t.AppendHeader(table.Row{"name", "type", "columns"})

	columns := map[string][]string{}
	for _, c := range set.Columns() {
		columns[c.Indicator] = append(columns[c.Indicator], c.String())
	}

	// the set keeps the config order
	for i, name := range set.Names() {
		t.AppendRow(table.Row{name, cfg.Indicators[i].Type, strings.Join(columns[name], ", ")})
	}

	t.Render()
	return nil
}
