package config

import (
	"github.com/mrz1836/rcli/internal/constants"
)

// DefaultConfig returns a new Config with the built-in default values.
// These defaults are the base layer that config files, environment variables
// and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		Text: TextConfig{
			// blake3 needs only a shared 32-byte key, the simpler setup.
			Format:       constants.FormatBlake3,
			SigningKey:   constants.DefaultSigningKeyFile,
			VerifyingKey: constants.DefaultVerifyingKeyFile,
			Signature:    constants.DefaultSignatureFile,

			// Oversized blake3 key files keep working unless the user opts in.
			StrictKeyLength: false,

			BatchConcurrency: constants.DefaultBatchConcurrency,
		},
		Base64: Base64Config{
			Format: constants.Base64Standard,
		},
		GenPass: GenPassConfig{
			Length:    constants.DefaultPasswordLength,
			Uppercase: true,
			Lowercase: true,
			Numbers:   true,
			Symbols:   true,
		},
		CSV: CSVConfig{
			Format:    constants.CSVFormatJSON,
			Delimiter: ",",
			Header:    true,
		},
	}
}
