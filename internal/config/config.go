// Package config loads index-schema settings from defaults, an optional
// config file and INDEX_SCHEMA_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"index-schema/internal/common"
	"index-schema/internal/match"
	"index-schema/internal/validate"
)

// EnvPrefix prefixes every environment variable, e.g. INDEX_SCHEMA_LOG_LEVEL.
const EnvPrefix = "INDEX_SCHEMA"

var ErrInvalidConfig = errors.New("invalid config")

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Output   OutputConfig   `mapstructure:"output"`
	Validate ValidateConfig `mapstructure:"validate"`
}

type LogConfig struct {
	Level     string `mapstructure:"level"`  // debug, info, warn, error
	Format    string `mapstructure:"format"` // text, json
	AddSource bool   `mapstructure:"add_source"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type ValidateConfig struct {
	Concurrency    int     `mapstructure:"concurrency"`
	Suggestions    bool    `mapstructure:"suggestions"`
	MinSimilarity  float64 `mapstructure:"min_similarity"`
	MaxSuggestions int     `mapstructure:"max_suggestions"`
	StrictDocument bool    `mapstructure:"strict_document"`
}

func setDefaults(v *viper.Viper) {
	def := validate.DefaultConfig()

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", FormatText)
	v.SetDefault("log.add_source", false)
	v.SetDefault("output.format", FormatText)
	v.SetDefault("validate.concurrency", def.Concurrency)
	v.SetDefault("validate.suggestions", def.Suggestions)
	v.SetDefault("validate.min_similarity", match.DefaultMinSimilarity)
	v.SetDefault("validate.max_suggestions", match.DefaultMaxSuggestions)
	v.SetDefault("validate.strict_document", def.CheckDocument)
}

// Load reads the configuration. path names a config file (yaml, json or
// toml); when empty, an "index-schema.yaml" in the working directory is
// used if present.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("index-schema")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Check(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Check reports the first setting out of range.
func (c *Config) Check() error {
	if !slices.Contains([]string{FormatText, FormatYAML, FormatJSON}, c.Output.Format) {
		return fmt.Errorf("%w: output.format %q (want text, yaml or json)", ErrInvalidConfig, c.Output.Format)
	}

	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}

	if c.Validate.Concurrency < 0 {
		return fmt.Errorf("%w: validate.concurrency %d", ErrInvalidConfig, c.Validate.Concurrency)
	}

	if c.Validate.MaxSuggestions < 0 {
		return fmt.Errorf("%w: validate.max_suggestions %d", ErrInvalidConfig, c.Validate.MaxSuggestions)
	}

	if !common.IsInRange(0, c.Validate.MinSimilarity, 1) {
		return fmt.Errorf("%w: validate.min_similarity %v (want 0..1)", ErrInvalidConfig, c.Validate.MinSimilarity)
	}

	return nil
}

// ValidatorConfig converts the settings into the validator's configuration.
func (c *Config) ValidatorConfig() validate.Config {
	return validate.Config{
		Suggestions:    c.Validate.Suggestions,
		MinSimilarity:  c.Validate.MinSimilarity,
		MaxSuggestions: c.Validate.MaxSuggestions,
		Concurrency:    c.Validate.Concurrency,
		CheckDocument:  c.Validate.StrictDocument,
	}
}
