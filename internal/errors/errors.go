// Package errors provides centralized error handling for rcli.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrUnsupportedFormat indicates a signature format other than blake3 or ed25519.
	ErrUnsupportedFormat = errors.New("unsupported signature format")

	// ErrInvalidKeySize indicates a key file whose length does not match the
	// requirement of the selected signature format.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidKey indicates key bytes of the right length that do not form a
	// usable key (an Ed25519 public key that is not a curve point).
	ErrInvalidKey = errors.New("malformed key")

	// ErrInvalidSignatureSize indicates a decoded signature whose byte length
	// does not match the selected signature format.
	ErrInvalidSignatureSize = errors.New("invalid signature size")

	// ErrSignatureDecode indicates signature text that is not URL-safe base64.
	ErrSignatureDecode = errors.New("malformed signature encoding")

	// ErrSignatureMismatch indicates that a well-formed signature did not verify.
	// Verification itself reports this as a false result; the CLI returns this
	// error only to select the exit code.
	ErrSignatureMismatch = errors.New("signature does not match")

	// ErrInputNotFound indicates that the input file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrKeyFileNotFound indicates that the key file does not exist.
	ErrKeyFileNotFound = errors.New("key file not found")

	// ErrSignatureFileNotFound indicates that the signature file does not exist.
	ErrSignatureFileNotFound = errors.New("signature file not found")

	// ErrReadInput indicates that reading an input stream failed midway.
	ErrReadInput = errors.New("failed to read input")

	// ErrStdinReused indicates that standard input was requested more than once
	// in a single invocation. Standard input cannot be re-read.
	ErrStdinReused = errors.New("standard input can only be read once")

	// ErrNoInputs indicates that a batch operation was given no inputs.
	ErrNoInputs = errors.New("no inputs provided")

	// ErrInvalidBase64Format indicates an unknown base64 engine name.
	ErrInvalidBase64Format = errors.New("invalid base64 format")

	// ErrBase64Decode indicates input that is not valid base64 for the selected engine.
	ErrBase64Decode = errors.New("malformed base64 input")

	// ErrNonUTF8Output indicates decoded bytes that cannot be printed as text.
	ErrNonUTF8Output = errors.New("decoded data is not valid UTF-8")

	// ErrInvalidPasswordLength indicates a password length outside the allowed range.
	ErrInvalidPasswordLength = errors.New("invalid password length")

	// ErrNoCharacterSets indicates a password request with every character class disabled.
	ErrNoCharacterSets = errors.New("no character sets enabled")

	// ErrInvalidCSVFormat indicates an unknown CSV output format.
	ErrInvalidCSVFormat = errors.New("invalid csv output format")

	// ErrInvalidDelimiter indicates a CSV delimiter that is not a single character.
	ErrInvalidDelimiter = errors.New("invalid csv delimiter")

	// ErrCSVParse indicates malformed CSV input.
	ErrCSVParse = errors.New("malformed csv input")

	// ErrOutputExists indicates that the output file exists and overwriting was declined.
	ErrOutputExists = errors.New("output file already exists")

	// ErrFileLocked indicates that another process holds the lock on an output file.
	ErrFileLocked = errors.New("file is locked by another process")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidText indicates an invalid text signing configuration value.
	ErrConfigInvalidText = errors.New("invalid text configuration")

	// ErrConfigInvalidBase64 indicates an invalid base64 configuration value.
	ErrConfigInvalidBase64 = errors.New("invalid base64 configuration")

	// ErrConfigInvalidGenPass indicates an invalid password generation configuration value.
	ErrConfigInvalidGenPass = errors.New("invalid genpass configuration")

	// ErrConfigInvalidCSV indicates an invalid CSV configuration value.
	ErrConfigInvalidCSV = errors.New("invalid csv configuration")

	// ErrNonInteractiveMode indicates that an operation requiring confirmation
	// was attempted in non-interactive mode without the force flag.
	ErrNonInteractiveMode = errors.New("use --force in non-interactive mode")

	// ErrMenuCanceled indicates that the user canceled a prompt.
	ErrMenuCanceled = errors.New("menu canceled by user")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
