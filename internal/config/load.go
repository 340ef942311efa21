package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// newViperInstance creates a Viper instance with the rcli env prefix, key
// replacer and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence:
//  1. Environment variables (RCLI_* prefix)
//  2. Project config (.rcli/config.yaml)
//  3. Global config (~/.rcli/config.yaml)
//  4. Built-in defaults
//
// Missing config files are not an error.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := mergeConfigFile(v, ProjectConfigPath(), "failed to read project config file"); err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("text.format", cfg.Text.Format).
		Bool("text.strict_key_length", cfg.Text.StrictKeyLength).
		Int("text.batch_concurrency", cfg.Text.BatchConcurrency).
		Str("base64.format", cfg.Base64.Format).
		Str("csv.format", cfg.CSV.Format).
		Msg("configuration loaded")

	return cfg, nil
}

// loadGlobalConfig reads ~/.rcli/config.yaml when it exists.
func loadGlobalConfig(v *viper.Viper) error {
	path, err := GlobalConfigPath()
	if err != nil {
		// Home directory unavailable; defaults and env still apply.
		return nil //nolint:nilerr // missing home is not a config problem
	}
	return mergeConfigFile(v, path, "failed to read global config file")
}

// mergeConfigFile merges the YAML file at path over the current values.
// A missing file is skipped silently.
func mergeConfigFile(v *viper.Viper, path, errContext string) error {
	if path == "" || !fileExists(path) {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, errContext)
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadFromPaths loads configuration from specific file paths.
// projectConfigPath has the higher priority; either path may be empty.
// Environment variables still override both files.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if err := mergeConfigFile(v, globalConfigPath, "failed to read global config: "+globalConfigPath); err != nil {
		return nil, err
	}
	if err := mergeConfigFile(v, projectConfigPath, "failed to read project config: "+projectConfigPath); err != nil {
		return nil, err
	}

	return unmarshalAndValidate(v)
}

// setDefaults configures all default values on the Viper instance.
// Keys must match the mapstructure tag names so environment variables bind.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("text.format", d.Text.Format)
	v.SetDefault("text.signing_key", d.Text.SigningKey)
	v.SetDefault("text.verifying_key", d.Text.VerifyingKey)
	v.SetDefault("text.signature", d.Text.Signature)
	v.SetDefault("text.strict_key_length", d.Text.StrictKeyLength)
	v.SetDefault("text.batch_concurrency", d.Text.BatchConcurrency)

	v.SetDefault("base64.format", d.Base64.Format)

	v.SetDefault("genpass.length", d.GenPass.Length)
	v.SetDefault("genpass.uppercase", d.GenPass.Uppercase)
	v.SetDefault("genpass.lowercase", d.GenPass.Lowercase)
	v.SetDefault("genpass.numbers", d.GenPass.Numbers)
	v.SetDefault("genpass.symbols", d.GenPass.Symbols)

	v.SetDefault("csv.format", d.CSV.Format)
	v.SetDefault("csv.delimiter", d.CSV.Delimiter)
	v.SetDefault("csv.header", d.CSV.Header)
	v.SetDefault("csv.columns", []string{})
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// Comma separated strings from the environment decode into slices.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
