package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/tastream/pkg/indicator"
)

func TestLoadConfig(t *testing.T) {
	type args struct {
		configFile string
	}

	tests := []struct {
		name    string
		args    args
		wantErr bool
		f       func(t *testing.T, config *Config)
	}{
		{
			name: "indicators",
			args: args{configFile: "testdata/indicators.yaml"},
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, StringSlice{"../datasource/csvsource/testdata/binance"}, config.Source.Paths)
				assert.Equal(t, "binance", config.Source.Format)

				require.Len(t, config.Indicators, 4)
				assert.Equal(t, NamedIndicator{
					Name: "rsi",
					Config: indicator.Config{
						Type:      indicator.TypeRSI,
						Period:    14,
						Smoothing: indicator.SmoothingWilder,
					},
				}, config.Indicators[0])
				assert.Equal(t, indicator.TypeMACD, config.Indicators[1].Type)
				assert.Equal(t, 2.5, config.Indicators[2].K)
				assert.Equal(t, "typical", config.Indicators[2].Source)
				assert.Equal(t, 3, config.Indicators[3].DPeriod)

				assert.NoError(t, config.Validate())
			},
		},
		{
			name:    "missing file",
			args:    args{configFile: "testdata/missing.yaml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Load(tt.args.configFile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.f != nil {
				tt.f(t, config)
			}
		})
	}
}

func TestConfig_BuildSet(t *testing.T) {
	config, err := Load("testdata/indicators.yaml")
	require.NoError(t, err)

	set, err := config.BuildSet()
	require.NoError(t, err)

	var columns []string
	for _, c := range set.Columns() {
		columns = append(columns, c.String())
	}

	assert.Equal(t, []string{
		"rsi",
		"MACD(12, 26, 9).macd", "MACD(12, 26, 9).signal", "MACD(12, 26, 9).histogram",
		"bands.average", "bands.upper", "bands.lower",
		"Stoch(14, 3).k", "Stoch(14, 3).d",
	}, columns)
}

func TestConfig_ValidateCollectsErrors(t *testing.T) {
	config, err := Load("testdata/invalid.yaml")
	require.NoError(t, err)

	err = config.Validate()
	require.Error(t, err)

	// empty path, unknown format, sma period, macd periods, duplicated name
	assert.Len(t, multierr.Errors(err), 5)
	assert.True(t, errors.Is(err, indicator.ErrInvalidParameter))
	assert.True(t, errors.Is(err, indicator.ErrDuplicateName))
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(EnvCSVPath, "a.csv,b.csv")
	t.Setenv(EnvCSVFormat, "metatrader")

	config, err := Load("testdata/indicators.yaml")
	require.NoError(t, err)

	assert.Equal(t, StringSlice{"a.csv", "b.csv"}, config.Source.Paths)
	assert.Equal(t, "metatrader", config.Source.Format)
}

func TestStringSlice(t *testing.T) {
	var s struct {
		Single StringSlice `yaml:"single"`
		List   StringSlice `yaml:"list"`
	}

	err := yaml.Unmarshal([]byte("single: a.csv\nlist: [b.csv, c.csv]\n"), &s)
	require.NoError(t, err)
	assert.Equal(t, StringSlice{"a.csv"}, s.Single)
	assert.Equal(t, StringSlice{"b.csv", "c.csv"}, s.List)

	var fromJSON StringSlice
	require.NoError(t, fromJSON.UnmarshalJSON([]byte(`["x.csv"]`)))
	assert.Equal(t, StringSlice{"x.csv"}, fromJSON)

	assert.Error(t, fromJSON.UnmarshalJSON([]byte(`42`)))
}
