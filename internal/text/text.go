// Package text orchestrates signing and verification of text inputs.
//
// It ties together input resolution, key loading, the signing schemes in
// package crypto and the signature codec. Files are only ever read; nothing
// here writes a key, an input or a signature.
package text

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/input"
)

// SignOptions describes one signing request.
type SignOptions struct {
	// Input is a file path or "-" for standard input.
	Input string
	// KeyPath is the MAC key (blake3) or the Ed25519 seed (ed25519).
	KeyPath string
	// Format selects the signing scheme.
	Format crypto.Format
	// Keys controls key file interpretation.
	Keys crypto.KeyOptions
	// Resolver opens Input. Nil uses a Resolver over os.Stdin.
	Resolver *input.Resolver
}

// VerifyOptions describes one verification request.
type VerifyOptions struct {
	// Input is a file path or "-" for standard input.
	Input string
	// KeyPath is the MAC key (blake3) or the Ed25519 public key (ed25519).
	KeyPath string
	// SignaturePath holds the encoded signature text.
	SignaturePath string
	// Format selects the signing scheme.
	Format crypto.Format
	// Keys controls key file interpretation.
	Keys crypto.KeyOptions
	// Resolver opens Input. Nil uses a Resolver over os.Stdin.
	Resolver *input.Resolver
}

func resolver(r *input.Resolver) *input.Resolver {
	if r == nil {
		return input.NewResolver(nil)
	}
	return r
}

// Sign signs opts.Input and returns the encoded signature.
func Sign(ctx context.Context, opts SignOptions) (string, error) {
	log := zerolog.Ctx(ctx)

	rc, err := resolver(opts.Resolver).Open(opts.Input)
	if err != nil {
		return "", err
	}
	defer func() { _ = rc.Close() }()

	signer, err := crypto.LoadSigner(ctx, opts.Format, opts.KeyPath, opts.Keys)
	if err != nil {
		return "", errors.Wrap(err, "failed to load signing key")
	}

	raw, err := signer.Sign(ctx, rc)
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("format", opts.Format.String()).
		Str("input", opts.Input).
		Int("signature_len", len(raw)).
		Msg("input signed")
	return crypto.EncodeSignature(raw), nil
}

// Verify checks the signature stored at opts.SignaturePath against
// opts.Input. A signature that does not match is (false, nil).
func Verify(ctx context.Context, opts VerifyOptions) (bool, error) {
	log := zerolog.Ctx(ctx)

	rc, err := resolver(opts.Resolver).Open(opts.Input)
	if err != nil {
		return false, err
	}
	defer func() { _ = rc.Close() }()

	sig, err := ReadSignatureFile(opts.SignaturePath)
	if err != nil {
		return false, err
	}

	verifier, err := crypto.LoadVerifier(ctx, opts.Format, opts.KeyPath, opts.Keys)
	if err != nil {
		return false, errors.Wrap(err, "failed to load verifying key")
	}

	ok, err := verifier.Verify(ctx, rc, sig)
	if err != nil {
		return false, err
	}

	log.Debug().
		Str("format", opts.Format.String()).
		Str("input", opts.Input).
		Bool("valid", ok).
		Msg("signature checked")
	return ok, nil
}

// ReadSignatureFile reads and decodes an encoded signature file.
// Surrounding whitespace, such as the trailing newline left by shell
// redirection, is ignored.
func ReadSignatureFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // signature path is chosen by the user
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(errors.ErrSignatureFileNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to read signature file %q", path)
	}
	return crypto.DecodeSignature(strings.TrimSpace(string(data)))
}
