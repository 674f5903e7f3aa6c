/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/IBM/sss-recon/reconstruct"
)

const (
	KeyWorkers         = "workers"
	KeyMaxCombinations = "max-combinations"
	KeyPreview         = "preview"
	KeyLogLevel        = "log-level"
	KeyDir             = "dir"

	EnvPrefix = "RECON"

	defaultConfigName = "recon"
)

// Config holds the settings of a reconstruction run.
type Config struct {
	Workers         int    `mapstructure:"workers"`
	MaxCombinations int    `mapstructure:"max-combinations"`
	PreviewSize     int    `mapstructure:"preview"`
	LogLevel        string `mapstructure:"log-level"`
	Dir             string `mapstructure:"dir"`
}

// New returns a viper instance with defaults set and RECON_* environment variables bound.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyMaxCombinations, reconstruct.DefaultMaxCombinations)
	v.SetDefault(KeyPreview, reconstruct.DefaultPreviewSize)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyDir, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// RegisterFlags declares the command line flags the settings can be overridden with.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.Int(KeyWorkers, runtime.NumCPU(), "number of combinations interpolated concurrently")
	flags.Int(KeyMaxCombinations, reconstruct.DefaultMaxCombinations, "refuse test cases with more combinations than this (0 for no limit)")
	flags.Int(KeyPreview, reconstruct.DefaultPreviewSize, "number of leading combinations to print")
	flags.String(KeyLogLevel, "info", "log level (debug, info, warn, error)")
	flags.String(KeyDir, "", "directory test case files are resolved against")
}

// Load reads the optional configuration file, binds the given flags and decodes the result.
// If file is empty, recon.{yml,yaml,json,toml} is looked up in the working directory and
// its absence is not an error.
func Load(v *viper.Viper, file string, flags *pflag.FlagSet) (*Config, error) {
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(defaultConfigName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "failed reading configuration")
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "failed decoding configuration")
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Errorf("%s must be positive, got %d", KeyWorkers, c.Workers)
	}
	if c.MaxCombinations < 0 {
		return errors.Errorf("%s must not be negative, got %d", KeyMaxCombinations, c.MaxCombinations)
	}
	if c.PreviewSize < 0 {
		return errors.Errorf("%s must not be negative, got %d", KeyPreview, c.PreviewSize)
	}
	return nil
}

// Scheme returns a reconstruction scheme configured by c.
func (c *Config) Scheme() *reconstruct.Scheme {
	return &reconstruct.Scheme{
		Workers:         c.Workers,
		MaxCombinations: c.MaxCombinations,
		PreviewSize:     c.PreviewSize,
	}
}
