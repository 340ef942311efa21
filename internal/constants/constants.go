// Package constants provides centralized constant values used throughout rcli.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Directory names and paths used by rcli for organizing data.
const (
	// RcliHome is the hidden directory name where rcli stores its config and logs.
	// This directory is created in the user's home directory.
	RcliHome = ".rcli"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// HomeEnvVar overrides the location of the rcli home directory.
	HomeEnvVar = "RCLI_HOME"

	// EnvPrefix is the prefix for environment variable configuration (RCLI_TEXT_FORMAT, ...).
	EnvPrefix = "RCLI"
)

// Input conventions shared by every command that reads a stream.
const (
	// StdinName is the input designator that selects standard input.
	StdinName = "-"
)

// Key and signature sizes for the supported signature formats.
const (
	// MACKeySize is the number of key bytes the blake3 keyed hash uses.
	MACKeySize = 32

	// MACSignatureSize is the size of a blake3 keyed hash signature.
	MACSignatureSize = 32

	// Ed25519SeedSize is the size of an Ed25519 private seed file.
	Ed25519SeedSize = 32

	// Ed25519PublicKeySize is the size of an Ed25519 public key file.
	Ed25519PublicKeySize = 32

	// Ed25519SignatureSize is the size of an Ed25519 signature.
	Ed25519SignatureSize = 64
)

// Default file names used by the text commands when no flag or config value is given.
const (
	// DefaultSigningKeyFile is the default key path for `rcli text sign`.
	DefaultSigningKeyFile = "private_key.pem"

	// DefaultVerifyingKeyFile is the default key path for `rcli text verify`.
	DefaultVerifyingKeyFile = "public_key.pem"

	// DefaultSignatureFile is the default signature path for `rcli text verify`.
	DefaultSignatureFile = "signature.sig"
)

// Batch signing limits.
const (
	// DefaultBatchConcurrency is the number of inputs signed in parallel.
	DefaultBatchConcurrency = 4

	// MaxBatchConcurrency caps the configurable batch concurrency.
	MaxBatchConcurrency = 64
)

// Password generation limits.
const (
	// DefaultPasswordLength is the length of generated passwords.
	DefaultPasswordLength = 16

	// MinPasswordLength is the shortest password genpass will produce.
	// It leaves room for one character of every character class.
	MinPasswordLength = 4

	// MaxPasswordLength is the longest password genpass will produce.
	MaxPasswordLength = 128
)

// Names of the signature formats as they appear in flags and config files.
const (
	// FormatBlake3 selects the blake3 keyed hash MAC.
	FormatBlake3 = "blake3"

	// FormatEd25519 selects Ed25519 signatures.
	FormatEd25519 = "ed25519"
)

// Names of the base64 engines.
const (
	// Base64Standard is the padded standard alphabet.
	Base64Standard = "standard"

	// Base64URLSafe is the unpadded URL-safe alphabet.
	Base64URLSafe = "urlsafe"
)

// Names of the CSV output formats.
const (
	// CSVFormatJSON writes pretty-printed JSON.
	CSVFormatJSON = "json"

	// CSVFormatYAML writes YAML.
	CSVFormatYAML = "yaml"
)

// Output formats accepted by the global --output flag.
const (
	// OutputFormatText is human-readable, styled when stdout is a terminal.
	OutputFormatText = "text"

	// OutputFormatJSON prints one JSON object per message.
	OutputFormatJSON = "json"
)
