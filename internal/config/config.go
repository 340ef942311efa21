// Package config provides configuration management for rcli with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by each command when the flag was explicitly set)
//  2. Environment variables (RCLI_* prefix, e.g. RCLI_TEXT_FORMAT)
//  3. Project config (.rcli/config.yaml)
//  4. Global config (~/.rcli/config.yaml)
//  5. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

// Config is the root configuration structure for rcli.
type Config struct {
	// Text contains settings for `rcli text sign` and `rcli text verify`.
	Text TextConfig `yaml:"text" mapstructure:"text"`

	// Base64 contains settings for `rcli base64`.
	Base64 Base64Config `yaml:"base64" mapstructure:"base64"`

	// GenPass contains settings for `rcli genpass`.
	GenPass GenPassConfig `yaml:"genpass" mapstructure:"genpass"`

	// CSV contains settings for `rcli csv`.
	CSV CSVConfig `yaml:"csv" mapstructure:"csv"`
}

// TextConfig contains settings for text signing and verification.
type TextConfig struct {
	// Format is the signature format, "blake3" or "ed25519".
	// Default: "blake3"
	Format string `yaml:"format" mapstructure:"format"`

	// SigningKey is the default key path for signing.
	// Default: "private_key.pem"
	SigningKey string `yaml:"signing_key" mapstructure:"signing_key"`

	// VerifyingKey is the default key path for verification.
	// Default: "public_key.pem"
	VerifyingKey string `yaml:"verifying_key" mapstructure:"verifying_key"`

	// Signature is the default signature file path for verification.
	// Default: "signature.sig"
	Signature string `yaml:"signature" mapstructure:"signature"`

	// StrictKeyLength rejects blake3 key files longer than 32 bytes instead of
	// using their first 32 bytes.
	// Default: false
	StrictKeyLength bool `yaml:"strict_key_length" mapstructure:"strict_key_length"`

	// BatchConcurrency is the number of inputs signed in parallel when several
	// inputs are given to `rcli text sign`.
	// Default: 4, Valid range: 1-64
	BatchConcurrency int `yaml:"batch_concurrency" mapstructure:"batch_concurrency"`
}

// Base64Config contains settings for base64 transcoding.
type Base64Config struct {
	// Format is the base64 engine, "standard" or "urlsafe".
	// Default: "standard"
	Format string `yaml:"format" mapstructure:"format"`
}

// GenPassConfig contains settings for password generation.
type GenPassConfig struct {
	// Length is the number of characters generated.
	// Default: 16, Valid range: 4-128
	Length int `yaml:"length" mapstructure:"length"`

	// Uppercase enables upper case letters.
	Uppercase bool `yaml:"uppercase" mapstructure:"uppercase"`

	// Lowercase enables lower case letters.
	Lowercase bool `yaml:"lowercase" mapstructure:"lowercase"`

	// Numbers enables digits.
	Numbers bool `yaml:"numbers" mapstructure:"numbers"`

	// Symbols enables punctuation symbols.
	Symbols bool `yaml:"symbols" mapstructure:"symbols"`
}

// CSVConfig contains settings for CSV conversion.
type CSVConfig struct {
	// Format is the output format, "json" or "yaml".
	// Default: "json"
	Format string `yaml:"format" mapstructure:"format"`

	// Delimiter is the single-character field separator.
	// Default: ","
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`

	// Header reports whether the first row holds column names.
	// Default: true
	Header bool `yaml:"header" mapstructure:"header"`

	// Columns names the columns when Header is false. Missing names are
	// generated as column_1, column_2, ...
	// Accepts a comma separated string from the environment (RCLI_CSV_COLUMNS).
	Columns []string `yaml:"columns,omitempty" mapstructure:"columns"`
}
