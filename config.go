package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type dataConfig struct {
	Quadgrams  string `mapstructure:"quadgrams"`
	Dictionary string `mapstructure:"dictionary"`
}

type logConfig struct {
	Level string `mapstructure:"level"`
}

type config struct {
	Data   dataConfig   `mapstructure:"data"`
	Search searchConfig `mapstructure:"search"`
	Log    logConfig    `mapstructure:"log"`

	// Seed is nil when no seed was configured and the clock should be used.
	Seed       *uint32       `mapstructure:"-"`
	MaxRuntime time.Duration `mapstructure:"-"`
}

// Config keys and the flags that override them. Flags that the running
// command does not define are ignored.
var flagBindings = map[string]string{
	"data.quadgrams":     "quadgrams",
	"data.dictionary":    "dictionary",
	"search.seed":        "seed",
	"search.max_runtime": "max-runtime",
	"search.restarts":    "restarts",
	"search.stall_limit": "stall",
	"search.top":         "top",
	"log.level":          "log-level",
}

func setDefaults(v *viper.Viper) {
	d := defaultSearchConfig()

	v.SetDefault("data.quadgrams", "english_quadgrams.txt")
	v.SetDefault("data.dictionary", "dictionary.txt")
	v.SetDefault("search.restarts", d.Restarts)
	v.SetDefault("search.stall_limit", d.StallLimit)
	v.SetDefault("search.top", d.Top)
	v.SetDefault("search.max_runtime", time.Duration(0))
	v.SetDefault("log.level", "warn")
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagBindings {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// loadConfig reads path, or ./ciphers.yaml when path is empty, layering
// CIPHERS_* environment variables and any bound flags on top. Only an
// explicitly named file has to exist.
func loadConfig(v *viper.Viper, path string) (config, error) {
	setDefaults(v)

	v.SetEnvPrefix("CIPHERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("ciphers")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return config{}, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if v.IsSet("search.seed") {
		seed := v.GetUint32("search.seed")
		cfg.Seed = &seed
	}
	cfg.MaxRuntime = v.GetDuration("search.max_runtime")

	if err := cfg.validate(); err != nil {
		return config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (cfg config) validate() error {
	switch {
	case cfg.Search.Restarts < 1:
		return fmt.Errorf("search.restarts must be at least 1, got %d", cfg.Search.Restarts)
	case cfg.Search.StallLimit < 1:
		return fmt.Errorf("search.stall_limit must be at least 1, got %d", cfg.Search.StallLimit)
	case cfg.Search.Top < 1:
		return fmt.Errorf("search.top must be at least 1, got %d", cfg.Search.Top)
	case cfg.MaxRuntime < 0:
		return fmt.Errorf("search.max_runtime must not be negative")
	}
	return nil
}
