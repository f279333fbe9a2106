// Package config loads settings for the command-line tool from defaults, an
// optional YAML file, a .env file and BILINGUAL_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tsawler/bilingual/logger"
	"github.com/tsawler/bilingual/translate"
)

// EnvPrefix prefixes every environment variable, as in
// BILINGUAL_TRANSLATE_BATCH_SIZE.
const EnvPrefix = "BILINGUAL"

// Config is the complete tool configuration.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Translate TranslateConfig `mapstructure:"translate"`
	Extract   ExtractConfig   `mapstructure:"extract"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// TranslateConfig configures the translation boundary.
type TranslateConfig struct {
	BatchSize      int     `mapstructure:"batch_size"`
	Concurrency    int     `mapstructure:"concurrency"`
	RatePerSecond  float64 `mapstructure:"rate_per_second"`
	SourceLanguage string  `mapstructure:"source_language"`
	TargetLanguage string  `mapstructure:"target_language"`
}

// ExtractConfig configures extraction.
type ExtractConfig struct {
	ExcludeNonLinear bool `mapstructure:"exclude_non_linear"`
	FallbackOrder    bool `mapstructure:"fallback_order"`
}

// SetDefaults registers every key with its default value. Keys without a
// default are not visible to environment lookup during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", logger.DefaultLevel)
	v.SetDefault("log.development", false)

	v.SetDefault("translate.batch_size", translate.DefaultBatchSize)
	v.SetDefault("translate.concurrency", translate.DefaultConcurrency)
	v.SetDefault("translate.rate_per_second", translate.DefaultRatePerSecond)
	v.SetDefault("translate.source_language", "auto")
	v.SetDefault("translate.target_language", "en")

	v.SetDefault("extract.exclude_non_linear", false)
	v.SetDefault("extract.fallback_order", false)
}

// LoadDotEnv loads environment variables from the given .env files (".env"
// when none are given). Missing files are ignored; variables already set in
// the environment are not overwritten.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", name, err)
		}
	}
	return nil
}

// Load reads configuration into v and decodes it. When file is empty a
// bilingual.yaml in the working directory is used if present; a file named
// explicitly must exist.
func Load(v *viper.Viper, file string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	} else {
		v.SetConfigName("bilingual")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the tool cannot run with.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: invalid log.level %q", c.Log.Level)
	}
	if c.Translate.BatchSize < 1 {
		return fmt.Errorf("config: translate.batch_size must be positive, got %d", c.Translate.BatchSize)
	}
	if c.Translate.Concurrency < 1 {
		return fmt.Errorf("config: translate.concurrency must be positive, got %d", c.Translate.Concurrency)
	}
	if c.Translate.TargetLanguage == "" {
		return errors.New("config: translate.target_language is required")
	}
	return nil
}

// LoggerConfig returns the logger settings.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       c.Log.Level,
		Development: c.Log.Development,
	}
}

// AlignerConfig returns the batching and pacing settings.
func (c *Config) AlignerConfig() translate.Config {
	return translate.Config{
		BatchSize:     c.Translate.BatchSize,
		Concurrency:   c.Translate.Concurrency,
		RatePerSecond: c.Translate.RatePerSecond,
	}
}

// TranslateOptions returns the language pair.
func (c *Config) TranslateOptions() translate.Options {
	return translate.Options{
		SourceLanguage: c.Translate.SourceLanguage,
		TargetLanguage: c.Translate.TargetLanguage,
	}
}
