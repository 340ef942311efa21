// Package native provides Ed25519 signing using standard crypto libraries.
package native

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"io"

	"github.com/mrz1836/rcli/internal/ctxutil"
	"github.com/mrz1836/rcli/internal/errors"
)

// readMessage reads the whole message; Ed25519 signs it in one pass.
func readMessage(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	message, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrReadInput, err)
	}
	return message, nil
}

// Signer implements signing with an Ed25519 key derived from a 32-byte seed.
type Signer struct {
	privKey ed25519.PrivateKey
}

// NewSigner expands seed into an Ed25519 key pair.
func NewSigner(seed []byte) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Wrapf(errors.ErrInvalidKeySize, "expected %d, got %d", ed25519.SeedSize, len(seed))
	}
	return &Signer{privKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// PublicKey returns the public half of the key pair.
func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.privKey.Public().(ed25519.PublicKey)
}

// Sign signs everything read from r using Ed25519.
func (s *Signer) Sign(ctx context.Context, r io.Reader) ([]byte, error) {
	message, err := readMessage(ctx, r)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(s.privKey, message), nil
}

// Verifier implements Ed25519 signature verification with a public key.
type Verifier struct {
	pubKey ed25519.PublicKey
}

// NewVerifier creates a Verifier for a 32-byte public key.
func NewVerifier(pub ed25519.PublicKey) (*Verifier, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, errors.Wrapf(errors.ErrInvalidKeySize, "expected %d, got %d", ed25519.PublicKeySize, len(pub))
	}
	return &Verifier{pubKey: pub}, nil
}

// Verify checks sig against everything read from r. Any cryptographic
// failure is reported as (false, nil); only a sig that is not 64 bytes is
// an error.
func (v *Verifier) Verify(ctx context.Context, r io.Reader, sig []byte) (bool, error) {
	if len(sig) != ed25519.SignatureSize {
		return false, errors.Wrapf(errors.ErrInvalidSignatureSize,
			"ed25519 signature must be %d bytes, got %d", ed25519.SignatureSize, len(sig))
	}
	message, err := readMessage(ctx, r)
	if err != nil {
		return false, err
	}
	return ed25519.Verify(v.pubKey, message, sig), nil
}
