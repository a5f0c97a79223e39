// Package config loads command-line settings from flags, FSPATH_*
// environment variables and an optional YAML file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable the CLI reads.
	EnvPrefix = "FSPATH"

	fileType = "yaml"
)

// Keys shared by flags, environment variables and the config file.
const (
	KeyOutput      = "output"
	KeyLogLevel    = "log-level"
	KeyMaxSymlinks = "max-symlinks"
	KeyRoot        = "root"
)

// Output encodings.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the resolved settings of one invocation.
type Config struct {
	Output      string `mapstructure:"output"`
	LogLevel    string `mapstructure:"log-level"`
	MaxSymlinks int    `mapstructure:"max-symlinks"`
	Root        string `mapstructure:"root"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Config {
	return Config{
		Output:      OutputText,
		LogLevel:    "warn",
		MaxSymlinks: 40,
	}
}

// New returns a Viper instance reading FSPATH_* variables, with defaults
// registered for every key.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyMaxSymlinks, d.MaxSymlinks)
	v.SetDefault(KeyRoot, d.Root)
	return v
}

// Load reads the optional config file and returns the merged settings.
// Flags bound to v take precedence over the environment, which takes
// precedence over the file.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Output = strings.ToLower(cfg.Output)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings no command can work with.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q: must be one of text, json, yaml", c.Output)
	}
	if c.MaxSymlinks < 1 {
		return fmt.Errorf("invalid max-symlinks %d: must be at least 1", c.MaxSymlinks)
	}
	return nil
}
