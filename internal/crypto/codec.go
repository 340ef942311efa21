package crypto

import (
	"encoding/base64"

	"github.com/mrz1836/rcli/internal/errors"
)

// EncodeSignature renders a raw signature as URL-safe base64 without padding.
func EncodeSignature(raw []byte) string {
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeSignature is the exact inverse of EncodeSignature.
// Padding and characters outside the URL-safe alphabet are
// rejected with ErrSignatureDecode.
func DecodeSignature(text string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.Strict().DecodeString(text)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrSignatureDecode, "%v", err)
	}
	return raw, nil
}
