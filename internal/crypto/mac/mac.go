// Package mac provides message authentication with the BLAKE3 keyed hash.
//
// The 32-byte digest is the signature. Signing and verifying use the same
// shared key.
package mac

import (
	"context"
	"crypto/subtle"
	"fmt"
	"io"

	"lukechampine.com/blake3"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/ctxutil"
	"github.com/mrz1836/rcli/internal/errors"
)

// Key is a BLAKE3 keyed hash key.
type Key [constants.MACKeySize]byte

// digest computes the keyed hash of r.
func digest(ctx context.Context, key *Key, r io.Reader) ([]byte, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	h := blake3.New(constants.MACSignatureSize, key[:])
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrReadInput, err)
	}
	return h.Sum(nil), nil
}

// Signer computes BLAKE3 keyed hash signatures.
type Signer struct {
	key Key
}

// NewSigner creates a Signer for key. The key is copied.
func NewSigner(key Key) *Signer {
	return &Signer{key: key}
}

// Sign returns the 32-byte keyed hash of everything read from r.
func (s *Signer) Sign(ctx context.Context, r io.Reader) ([]byte, error) {
	return digest(ctx, &s.key, r)
}

// Verifier checks BLAKE3 keyed hash signatures.
type Verifier struct {
	key Key
}

// NewVerifier creates a Verifier for key. The key is copied.
func NewVerifier(key Key) *Verifier {
	return &Verifier{key: key}
}

// Verify recomputes the keyed hash of r and compares it to sig in constant
// time. A sig that is not 32 bytes is ErrInvalidSignatureSize.
func (v *Verifier) Verify(ctx context.Context, r io.Reader, sig []byte) (bool, error) {
	if len(sig) != constants.MACSignatureSize {
		return false, errors.Wrapf(errors.ErrInvalidSignatureSize,
			"blake3 signature must be %d bytes, got %d", constants.MACSignatureSize, len(sig))
	}
	sum, err := digest(ctx, &v.key, r)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(sum, sig) == 1, nil
}
