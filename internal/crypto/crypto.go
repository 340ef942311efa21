// Package crypto provides the text signing and verification core for rcli.
//
// Two schemes sit behind the same Signer and Verifier interfaces: a BLAKE3
// keyed hash (package mac) and Ed25519 signatures (package native). The
// scheme is always chosen explicitly by the caller through a Format; it is
// never inferred from key or signature bytes.
package crypto

import (
	"context"
	"io"
	"strings"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Format identifies a signing scheme.
type Format int

const (
	// FormatBlake3 is the BLAKE3 keyed hash MAC. It is the default format.
	FormatBlake3 Format = iota
	// FormatEd25519 is the Ed25519 digital signature scheme.
	FormatEd25519
)

// Formats lists every supported format in flag help order.
func Formats() []Format {
	return []Format{FormatBlake3, FormatEd25519}
}

// ParseFormat converts a format name into a Format.
// Matching is case-insensitive; unknown names return ErrUnsupportedFormat.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case constants.FormatBlake3:
		return FormatBlake3, nil
	case constants.FormatEd25519:
		return FormatEd25519, nil
	default:
		return 0, errors.Wrapf(errors.ErrUnsupportedFormat, "%q (expected %s or %s)",
			name, constants.FormatBlake3, constants.FormatEd25519)
	}
}

// String returns the format name used on the command line and in config.
func (f Format) String() string {
	switch f {
	case FormatBlake3:
		return constants.FormatBlake3
	case FormatEd25519:
		return constants.FormatEd25519
	default:
		return "unknown"
	}
}

// SignatureSize returns the raw signature length in bytes for the format.
func (f Format) SignatureSize() int {
	switch f {
	case FormatBlake3:
		return constants.MACSignatureSize
	case FormatEd25519:
		return constants.Ed25519SignatureSize
	default:
		return 0
	}
}

// Signer produces a raw signature over a message stream.
// Implementations are deterministic: the same key and message always yield
// the same signature.
type Signer interface {
	// Sign reads r to the end and returns the raw signature.
	// Read failures are wrapped with errors.ErrReadInput.
	Sign(ctx context.Context, r io.Reader) ([]byte, error)

	// Format reports the scheme this signer was constructed for.
	Format() Format
}

// Verifier checks a raw signature over a message stream.
type Verifier interface {
	// Verify reads r to the end and reports whether sig is valid for it.
	// A mismatch is (false, nil). A signature of the wrong length is
	// errors.ErrInvalidSignatureSize and is rejected before reading r.
	Verify(ctx context.Context, r io.Reader, sig []byte) (bool, error)

	// Format reports the scheme this verifier was constructed for.
	Format() Format
}

// streamSigner is the method set shared by the mac and native signers.
type streamSigner interface {
	Sign(ctx context.Context, r io.Reader) ([]byte, error)
}

// streamVerifier is the method set shared by the mac and native verifiers.
type streamVerifier interface {
	Verify(ctx context.Context, r io.Reader, sig []byte) (bool, error)
}

// boundSigner tags a scheme implementation with its Format.
type boundSigner struct {
	streamSigner

	format Format
}

func (s boundSigner) Format() Format { return s.format }

// boundVerifier tags a scheme implementation with its Format.
type boundVerifier struct {
	streamVerifier

	format Format
}

func (v boundVerifier) Format() Format { return v.format }
