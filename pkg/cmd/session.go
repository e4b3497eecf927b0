package cmd

import (
	"context"

	"github.com/pkg/errors"

	"github.com/c9s/tastream/pkg/config"
	"github.com/c9s/tastream/pkg/datasource/csvsource"
	"github.com/c9s/tastream/pkg/indicator"
	"github.com/c9s/tastream/pkg/types"
)

type sourceOptions struct {
	configFile string

	// paths and format override the source of the config file
	paths  []string
	format string
}

// session feeds the quotes of the configured source into the indicator set.
type session struct {
	config *config.Config
	set    *indicator.Set
	maker  csvsource.MakeCSVQuoteReader
}

// loadConfig loads the config file and applies the source flags.
func loadConfig(opts sourceOptions) (*config.Config, error) {
	if opts.configFile == "" {
		return nil, errors.New("--config is required")
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}

	if len(opts.paths) > 0 {
		cfg.Source.Paths = opts.paths
	}

	if opts.format != "" {
		cfg.Source.Format = opts.format
	}

	return cfg, nil
}

func newSession(opts sourceOptions) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", opts.configFile)
	}

	set, err := cfg.BuildSet()
	if err != nil {
		return nil, err
	}

	maker, err := csvsource.ReaderMakerByFormat(cfg.Source.Format)
	if err != nil {
		return nil, err
	}

	return &session{config: cfg, set: set, maker: maker}, nil
}

// replay calls f with every quote and the indicator values including it, one source path after another.
func (s *session) replay(ctx context.Context, f func(q types.Quote, row indicator.Row) error) (count int, err error) {
	for _, path := range s.config.Source.Paths {
		err = csvsource.WalkQuotesFromCSV(path, s.maker, func(q types.Quote) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			count++
			return f(q, s.set.Next(q))
		})
		if err != nil {
			return count, err
		}
	}

	return count, nil
}
