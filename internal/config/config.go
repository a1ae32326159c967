// Package config loads parley settings from defaults, an optional YAML file,
// PARLEY_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. PARLEY_PROMPT.
const EnvPrefix = "PARLEY"

// Config holds the effective settings for one process.
type Config struct {
	Prompt       string `mapstructure:"prompt" yaml:"prompt"`
	HistoryFile  string `mapstructure:"history_file" yaml:"history_file"`
	Debug        bool   `mapstructure:"debug" yaml:"debug"`
	Plain        bool   `mapstructure:"plain" yaml:"plain"`
	Markdown     bool   `mapstructure:"markdown" yaml:"markdown"`
	Banner       bool   `mapstructure:"banner" yaml:"banner"`
	Sanitize     bool   `mapstructure:"sanitize_input" yaml:"sanitize_input"`
	MaxInputSize int    `mapstructure:"max_input_size" yaml:"max_input_size"`
	MetricsAddr  string `mapstructure:"metrics_addr" yaml:"metrics_addr"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-" yaml:"-"`
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"prompt":         "prompt",
	"history-file":   "history_file",
	"debug":          "debug",
	"plain":          "plain",
	"markdown":       "markdown",
	"banner":         "banner",
	"sanitize-input": "sanitize_input",
	"max-input-size": "max_input_size",
	"metrics-addr":   "metrics_addr",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("prompt", ">> ")
	v.SetDefault("history_file", "")
	v.SetDefault("debug", false)
	v.SetDefault("plain", false)
	v.SetDefault("markdown", false)
	v.SetDefault("banner", true)
	v.SetDefault("sanitize_input", true)
	v.SetDefault("max_input_size", 4096)
	v.SetDefault("metrics_addr", "")
}

// Load resolves the configuration. An explicit path must exist; without one,
// parley.yaml is looked up in the working directory and then in the user
// config directory, and its absence is not an error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("parley")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "parley"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %q: %w", name, err)
			}
		}
	}

	cfg, err := decode(v.AllSettings())
	if err != nil {
		return nil, err
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode converts viper's settings map. Environment values arrive as strings,
// so weak typing is enabled ("true" -> bool, "512" -> int).
func decode(settings map[string]any) (*Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := dec.Decode(settings); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects settings the loop cannot run with.
func (c *Config) Validate() error {
	if c.MaxInputSize <= 0 {
		return fmt.Errorf("invalid config: max_input_size must be positive, got %d", c.MaxInputSize)
	}
	return nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(out), nil
}
