package config

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/tastream/pkg/datasource/csvsource"
	"github.com/c9s/tastream/pkg/envvar"
	"github.com/c9s/tastream/pkg/indicator"
)

var log = logrus.WithField("component", "config")

const (
	EnvCSVPath   = envvar.Prefix + "CSV_PATH"
	EnvCSVFormat = envvar.Prefix + "CSV_FORMAT"
)

// Source is where the quotes are read from.
type Source struct {
	// Paths are csv files or directories of csv files, read in order
	Paths StringSlice `json:"path" yaml:"path"`

	// Format selects the csv decoder: binance (default) or metatrader
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// NamedIndicator is one entry of the indicators list, the name defaults to the indicator description, e.g., "RSI(14)".
type NamedIndicator struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	indicator.Config `yaml:",inline"`
}

type Config struct {
	Source     Source           `json:"source" yaml:"source"`
	Indicators []NamedIndicator `json:"indicators" yaml:"indicators"`
}

type Stash map[string]interface{}

func loadStash(configFile string) (Stash, error) {
	config, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	stash := make(Stash)
	if err := yaml.Unmarshal(config, stash); err != nil {
		return nil, errors.Wrapf(err, "yaml parsing error, file: %s", configFile)
	}

	return stash, err
}

// Load reads the config file and applies the environment overrides.
func Load(configFile string) (*Config, error) {
	var config Config

	stash, err := loadStash(configFile)
	if err != nil {
		return nil, err
	}

	if conf, ok := stash["source"]; ok {
		val, err := reUnmarshal(conf, config.Source)
		if err != nil {
			return nil, errors.Wrap(err, "source")
		}
		config.Source = val.(Source)
	}

	indicators, err := loadIndicators(stash)
	if err != nil {
		return nil, err
	}

	config.Indicators = indicators
	config.ApplyEnv()
	return &config, nil
}

func loadIndicators(stash Stash) (indicators []NamedIndicator, err error) {
	indicatorsConf, ok := stash["indicators"]
	if !ok {
		return indicators, nil
	}

	configList, ok := indicatorsConf.([]interface{})
	if !ok {
		return nil, errors.New("expecting list in indicators")
	}

	for i, entry := range configList {
		// nested maps are decoded into the type of the outer map
		var configStash map[string]interface{}
		switch m := entry.(type) {
		case Stash:
			configStash = m
		case map[string]interface{}:
			configStash = m
		default:
			return nil, errors.Errorf("indicator config should be a map, given: %T %+v", entry, entry)
		}

		val, err := reUnmarshal(configStash, NamedIndicator{})
		if err != nil {
			return nil, errors.Wrapf(err, "indicator #%d", i)
		}

		indicators = append(indicators, val.(NamedIndicator))
	}

	return indicators, nil
}

// ApplyEnv overrides the source with TASTREAM_CSV_PATH and TASTREAM_CSV_FORMAT.
func (c *Config) ApplyEnv() {
	if paths, ok := envvar.Strings(EnvCSVPath); ok {
		log.Infof("csv path is overridden by %s: %v", EnvCSVPath, paths)
		c.Source.Paths = paths
	}

	if envvar.SetString(EnvCSVFormat, &c.Source.Format) {
		log.Infof("csv format is overridden by %s: %s", EnvCSVFormat, c.Source.Format)
	}
}

// Validate reports every invalid entry at once.
func (c *Config) Validate() (err error) {
	if len(c.Source.Paths) == 0 {
		err = multierr.Append(err, errors.New("source path is not set"))
	}

	if _, e := csvsource.ReaderMakerByFormat(c.Source.Format); e != nil {
		err = multierr.Append(err, e)
	}

	_, e := c.BuildSet()
	return multierr.Append(err, e)
}

// BuildSet builds the indicators in the config order.
func (c *Config) BuildSet() (*indicator.Set, error) {
	var err error

	set := indicator.NewSet()
	for i, entry := range c.Indicators {
		ind, e := indicator.Build(entry.Config)
		if e != nil {
			err = multierr.Append(err, errors.Wrapf(e, "indicator #%d %s", i, entry.Name))
			continue
		}

		name := entry.Name
		if name == "" {
			name = ind.String()
		}

		if e := set.Add(name, ind); e != nil {
			err = multierr.Append(err, e)
		}
	}

	if err != nil {
		return nil, err
	}

	return set, nil
}

func reUnmarshal(conf interface{}, tpe interface{}) (interface{}, error) {
	// get the type, e.g., NamedIndicator
	rt := reflect.TypeOf(tpe)

	// allocate new object from the given type
	val := reflect.New(rt)

	// now we have &NamedIndicator
	valRef := val.Interface()

	plain, err := json.Marshal(conf)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(plain, valRef); err != nil {
		return nil, errors.Wrapf(err, "json parsing error, given payload: %s", plain)
	}

	return val.Elem().Interface(), nil
}
