package crypto

import (
	"context"
	"crypto/ed25519"
	stderrors "errors"
	"io/fs"
	"os"

	"filippo.io/edwards25519"
	"github.com/rs/zerolog"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto/mac"
	"github.com/mrz1836/rcli/internal/crypto/native"
	"github.com/mrz1836/rcli/internal/errors"
)

// KeyOptions controls how key files are interpreted.
type KeyOptions struct {
	// StrictKeyLength rejects MAC keys longer than 32 bytes instead of
	// using their first 32 bytes.
	StrictKeyLength bool
}

// ReadKeyFile reads the raw bytes of a key file.
// A missing file returns ErrKeyFileNotFound.
func ReadKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // key path is chosen by the user
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(errors.ErrKeyFileNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to read key file %q", path)
	}
	return data, nil
}

// ParseMACKey turns raw key file bytes into a MAC key.
//
// Fewer than 32 bytes is ErrInvalidKeySize. When data is longer, the first 32
// bytes are used and truncated is true, unless strict is set, in which case
// the key is rejected with ErrInvalidKeySize.
func ParseMACKey(data []byte, strict bool) (key mac.Key, truncated bool, err error) {
	switch {
	case len(data) < constants.MACKeySize:
		return key, false, errors.Wrapf(errors.ErrInvalidKeySize,
			"blake3 key must be at least %d bytes, got %d", constants.MACKeySize, len(data))
	case len(data) > constants.MACKeySize && strict:
		return key, false, errors.Wrapf(errors.ErrInvalidKeySize,
			"blake3 key must be exactly %d bytes, got %d", constants.MACKeySize, len(data))
	}
	copy(key[:], data[:constants.MACKeySize])
	return key, len(data) > constants.MACKeySize, nil
}

// ParseSigningKey checks that data is a 32-byte Ed25519 seed.
func ParseSigningKey(data []byte) ([]byte, error) {
	if len(data) != constants.Ed25519SeedSize {
		return nil, errors.Wrapf(errors.ErrInvalidKeySize,
			"ed25519 signing key must be %d bytes, got %d", constants.Ed25519SeedSize, len(data))
	}
	seed := make([]byte, ed25519.SeedSize)
	copy(seed, data)
	return seed, nil
}

// ParseVerifyingKey checks that data is a 32-byte encoding of a point on the
// Ed25519 curve.
func ParseVerifyingKey(data []byte) (ed25519.PublicKey, error) {
	if len(data) != constants.Ed25519PublicKeySize {
		return nil, errors.Wrapf(errors.ErrInvalidKeySize,
			"ed25519 verifying key must be %d bytes, got %d", constants.Ed25519PublicKeySize, len(data))
	}
	if _, err := new(edwards25519.Point).SetBytes(data); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidKey, "ed25519 verifying key is not a valid curve point")
	}
	pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pub, data)
	return pub, nil
}

// LoadSigner reads the key at path and builds the signer for format.
func LoadSigner(ctx context.Context, format Format, path string, opts KeyOptions) (Signer, error) {
	data, err := ReadKeyFile(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatBlake3:
		key, err := loadMACKey(ctx, data, path, opts)
		if err != nil {
			return nil, err
		}
		return boundSigner{streamSigner: mac.NewSigner(key), format: format}, nil
	case FormatEd25519:
		seed, err := ParseSigningKey(data)
		if err != nil {
			return nil, err
		}
		signer, err := native.NewSigner(seed)
		if err != nil {
			return nil, err
		}
		return boundSigner{streamSigner: signer, format: format}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%d", int(format))
	}
}

// LoadVerifier reads the key at path and builds the verifier for format.
// For FormatBlake3 the key is the shared MAC key; for FormatEd25519 it is
// the public key.
func LoadVerifier(ctx context.Context, format Format, path string, opts KeyOptions) (Verifier, error) {
	data, err := ReadKeyFile(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatBlake3:
		key, err := loadMACKey(ctx, data, path, opts)
		if err != nil {
			return nil, err
		}
		return boundVerifier{streamVerifier: mac.NewVerifier(key), format: format}, nil
	case FormatEd25519:
		pub, err := ParseVerifyingKey(data)
		if err != nil {
			return nil, err
		}
		verifier, err := native.NewVerifier(pub)
		if err != nil {
			return nil, err
		}
		return boundVerifier{streamVerifier: verifier, format: format}, nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%d", int(format))
	}
}

func loadMACKey(ctx context.Context, data []byte, path string, opts KeyOptions) (mac.Key, error) {
	key, truncated, err := ParseMACKey(data, opts.StrictKeyLength)
	if err != nil {
		return key, err
	}
	if truncated {
		zerolog.Ctx(ctx).Warn().
			Str("key_path", path).
			Int("key_len", len(data)).
			Int("used_len", constants.MACKeySize).
			Msg("blake3 key file is longer than 32 bytes, using the first 32")
	}
	return key, nil
}
