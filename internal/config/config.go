package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SHEETPLOT_SOURCE
const EnvPrefix = "SHEETPLOT"

// Config holds the command line settings after defaults, config file,
// environment and flags are merged
type Config struct {
	Source string    `mapstructure:"source"`
	Output string    `mapstructure:"output"`
	Log    LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	SeqURL string `mapstructure:"seq_url"`
}

// New returns a viper instance with defaults and environment binding.
// When configFile is set it is read immediately.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("source", "")
	v.SetDefault("output", "violin.png")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.seq_url", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}
	return v, nil
}

// Load decodes the merged settings
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks settings required to run against a data source
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("no data source: set --source, %s_SOURCE or 'source' in the config file", EnvPrefix)
	}
	return nil
}
