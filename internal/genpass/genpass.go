// Package genpass generates random passwords from configurable character sets.
package genpass

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Character sets. Look-alike characters (O, l, 0, 1) are left out.
const (
	Upper   = "ABCDEFGHIJKLMNPQRSTUVWXYZ"
	Lower   = "abcdefghijkmnopqrstuvwxyz"
	Numbers = "23456789"
	Symbols = "!@#$%^&*"
)

// Options selects the password length and the enabled character sets.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// Generate returns a password built from crypto/rand.
func Generate(opts Options) (string, error) {
	return GenerateFrom(rand.Reader, opts)
}

// GenerateFrom returns a password drawing randomness from src.
//
// Every enabled set contributes at least one character; the remaining
// positions are drawn from the union of the enabled sets and the result is
// shuffled.
func GenerateFrom(src io.Reader, opts Options) (string, error) {
	if opts.Length < constants.MinPasswordLength || opts.Length > constants.MaxPasswordLength {
		return "", errors.Wrapf(errors.ErrInvalidPasswordLength, "%d (must be %d-%d)",
			opts.Length, constants.MinPasswordLength, constants.MaxPasswordLength)
	}

	sets := enabledSets(opts)
	if len(sets) == 0 {
		return "", errors.ErrNoCharacterSets
	}

	password := make([]byte, 0, opts.Length)
	var pool []byte
	for _, set := range sets {
		c, err := pick(src, set)
		if err != nil {
			return "", err
		}
		password = append(password, c)
		pool = append(pool, set...)
	}

	for len(password) < opts.Length {
		c, err := pick(src, string(pool))
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(src, password); err != nil {
		return "", err
	}
	return string(password), nil
}

func enabledSets(opts Options) []string {
	var sets []string
	if opts.Uppercase {
		sets = append(sets, Upper)
	}
	if opts.Lowercase {
		sets = append(sets, Lower)
	}
	if opts.Numbers {
		sets = append(sets, Numbers)
	}
	if opts.Symbols {
		sets = append(sets, Symbols)
	}
	return sets
}

func randIndex(src io.Reader, n int) (int, error) {
	v, err := rand.Int(src, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "failed to read random source")
	}
	return int(v.Int64()), nil
}

func pick(src io.Reader, set string) (byte, error) {
	i, err := randIndex(src, len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle is a Fisher-Yates shuffle.
func shuffle(src io.Reader, b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randIndex(src, i+1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
