// Package b64 encodes and decodes base64 in the two alphabets rcli supports.
//
// The standard alphabet is padded; the URL-safe alphabet is not, which keeps
// it interchangeable with rcli signature text.
package b64

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Format selects a base64 alphabet.
type Format int

const (
	// FormatStandard is RFC 4648 base64 with padding.
	FormatStandard Format = iota
	// FormatURLSafe is the RFC 4648 URL-safe alphabet without padding.
	FormatURLSafe
)

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case constants.Base64Standard:
		return FormatStandard, nil
	case constants.Base64URLSafe:
		return FormatURLSafe, nil
	default:
		return 0, errors.Wrapf(errors.ErrInvalidBase64Format, "%q (expected %s or %s)",
			name, constants.Base64Standard, constants.Base64URLSafe)
	}
}

// String returns the format name.
func (f Format) String() string {
	if f == FormatURLSafe {
		return constants.Base64URLSafe
	}
	return constants.Base64Standard
}

func (f Format) encoding() *base64.Encoding {
	if f == FormatURLSafe {
		return base64.RawURLEncoding
	}
	return base64.StdEncoding
}

// Encode returns data encoded with the alphabet of f.
func Encode(data []byte, f Format) string {
	return f.encoding().EncodeToString(data)
}

// Decode decodes text with the alphabet of f.
// Trailing whitespace is ignored.
func Decode(text string, f Format) ([]byte, error) {
	raw, err := f.encoding().DecodeString(strings.TrimRightFunc(text, isSpace))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrBase64Decode, "%s: %v", f, err)
	}
	return raw, nil
}

// DecodeText decodes text and requires the result to be valid UTF-8.
func DecodeText(text string, f Format) (string, error) {
	raw, err := Decode(text, f)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", errors.ErrNonUTF8Output
	}
	return string(raw), nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
