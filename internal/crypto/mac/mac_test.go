package mac

import (
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/testutil"
)

func testKey(b byte) Key {
	var k Key
	for i := range k {
		k[i] = b
	}
	return k
}

func TestSigner_Sign(t *testing.T) {
	t.Run("matches the published keyed hash for a zero key", func(t *testing.T) {
		sig, err := NewSigner(Key{}).Sign(context.Background(), strings.NewReader("hello world"))
		require.NoError(t, err)
		assert.Equal(t, "f70d67530338246a6522eae9daad92c0dfd4bcf4e511602d96e9afd1d2210479", hex.EncodeToString(sig))
	})

	t.Run("is deterministic", func(t *testing.T) {
		s := NewSigner(testKey(7))
		first, err := s.Sign(context.Background(), strings.NewReader("message"))
		require.NoError(t, err)
		second, err := s.Sign(context.Background(), strings.NewReader("message"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, first, 32)
	})

	t.Run("different keys give different signatures", func(t *testing.T) {
		a, err := NewSigner(testKey(1)).Sign(context.Background(), strings.NewReader("message"))
		require.NoError(t, err)
		b, err := NewSigner(testKey(2)).Sign(context.Background(), strings.NewReader("message"))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("wraps read failures", func(t *testing.T) {
		_, err := NewSigner(Key{}).Sign(context.Background(), testutil.FailingReader{Err: testutil.ErrMockRead})
		require.ErrorIs(t, err, errors.ErrReadInput)
		assert.ErrorIs(t, err, testutil.ErrMockRead)
	})

	t.Run("honors canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewSigner(Key{}).Sign(ctx, strings.NewReader("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestVerifier_Verify(t *testing.T) {
	key := testKey(42)
	sig, err := NewSigner(key).Sign(context.Background(), strings.NewReader("payload"))
	require.NoError(t, err)

	t.Run("accepts a valid signature", func(t *testing.T) {
		ok, err := NewVerifier(key).Verify(context.Background(), strings.NewReader("payload"), sig)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects a tampered message", func(t *testing.T) {
		ok, err := NewVerifier(key).Verify(context.Background(), strings.NewReader("payload!"), sig)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rejects a tampered signature", func(t *testing.T) {
		bad := append([]byte(nil), sig...)
		bad[0] ^= 0x01
		ok, err := NewVerifier(key).Verify(context.Background(), strings.NewReader("payload"), bad)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rejects a different key", func(t *testing.T) {
		ok, err := NewVerifier(testKey(43)).Verify(context.Background(), strings.NewReader("payload"), sig)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("wrong signature length is an error", func(t *testing.T) {
		for _, n := range []int{0, 10, 31, 33, 64} {
			_, err := NewVerifier(key).Verify(context.Background(), strings.NewReader("payload"), make([]byte, n))
			assert.ErrorIs(t, err, errors.ErrInvalidSignatureSize, "length %d", n)
		}
	})
}
