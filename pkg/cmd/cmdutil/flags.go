package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags shared by every command
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug flag")
	flags.String("config", "", "config file")
	flags.String("dotenv", ".env.local", "the dotenv file you want to load")
	flags.String("log-file", "", "also write json logs into this file, rotated by size")
	flags.Int("log-max-size", 100, "the size in megabytes of the log file before it gets rotated")
}

// SourceFlags defines the flags overriding the quote source of the config file
func SourceFlags(flags *pflag.FlagSet) {
	flags.StringSlice("csv", nil, "csv files or directories to read the quotes from")
	flags.String("format", "", "csv format: binance or metatrader")
}
