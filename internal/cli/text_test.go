package cli

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
)

const helloWorldBlake3 = "9w1nUwM4JGplIurp2q2SwN_UvPTlEWAtlumv0dIhBHk"

func TestTextSign_ZeroKeyRegression(t *testing.T) {
	work := isolate(t)
	key := writeFile(t, work, "mac.key", make([]byte, 32))

	res := runRcli(t, "hello world", "text", "sign", "-k", key)
	require.NoError(t, res.err)
	assert.Equal(t, helloWorldBlake3+"\n", res.stdout)
}

func TestTextSign_DefaultsFromConfig(t *testing.T) {
	work := isolate(t)
	writeFile(t, work, "private_key.pem", make([]byte, 40))

	res := runRcli(t, "hello world", "text", "sign")
	require.NoError(t, res.err)
	assert.Equal(t, helloWorldBlake3+"\n", res.stdout)
}

func TestTextSign_StrictKeyLengthFromConfig(t *testing.T) {
	work := isolate(t)
	writeFile(t, work, "private_key.pem", make([]byte, 40))
	writeFile(t, work, ".rcli/config.yaml", []byte("text:\n  strict_key_length: true\n"))

	res := runRcli(t, "hello world", "text", "sign")
	require.ErrorIs(t, res.err, errors.ErrInvalidKeySize)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
}

func TestTextSign_JSONOutput(t *testing.T) {
	work := isolate(t)
	key := writeFile(t, work, "mac.key", make([]byte, 32))

	res := runRcli(t, "hello world", "text", "sign", "-k", key, "-o", "json")
	require.NoError(t, res.err)

	var msg map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &msg))
	assert.Equal(t, "value", msg["type"])
	assert.Equal(t, "signature", msg["label"])
	assert.Equal(t, helloWorldBlake3, msg["value"])
}

func TestTextSign_MissingKey(t *testing.T) {
	isolate(t)

	res := runRcli(t, "hello", "text", "sign", "-k", "nope.key")
	require.ErrorIs(t, res.err, errors.ErrKeyFileNotFound)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
}

func TestTextSign_MissingInput(t *testing.T) {
	work := isolate(t)
	key := writeFile(t, work, "mac.key", make([]byte, 32))

	res := runRcli(t, "", "text", "sign", "-k", key, "-i", "missing.txt")
	require.ErrorIs(t, res.err, errors.ErrInputNotFound)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
}

func TestTextSign_UnsupportedFormat(t *testing.T) {
	work := isolate(t)
	key := writeFile(t, work, "mac.key", make([]byte, 32))

	res := runRcli(t, "hello", "text", "sign", "-k", key, "--format", "rsa")
	require.ErrorIs(t, res.err, errors.ErrUnsupportedFormat)
}

func TestText_RoundTripBlake3(t *testing.T) {
	work := isolate(t)
	key := writeFile(t, work, "mac.key", []byte(strings.Repeat("k", 32)))
	msg := writeFile(t, work, "msg.txt", []byte("the quick brown fox"))

	signed := runRcli(t, "", "text", "sign", "-k", key, "-i", msg)
	require.NoError(t, signed.err)
	// The trailing newline from stdout must not break verification.
	sigPath := writeFile(t, work, "signature.sig", []byte(signed.stdout))

	verified := runRcli(t, "", "text", "verify", "-k", key, "-s", sigPath, "-i", msg)
	require.NoError(t, verified.err)
	assert.Contains(t, verified.stdout, "Signature verified")

	tampered := runRcli(t, "the quick brown fox!", "text", "verify", "-k", key, "-s", sigPath)
	require.ErrorIs(t, tampered.err, errors.ErrSignatureMismatch)
	assert.Equal(t, ExitSignatureMismatch, ExitCodeForError(tampered.err))
}

func TestText_RoundTripEd25519(t *testing.T) {
	work := isolate(t)

	seed, err := hex.DecodeString("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	require.NoError(t, err)
	priv := ed25519.NewKeyFromSeed(seed)
	pub, ok := priv.Public().(ed25519.PublicKey)
	require.True(t, ok)

	writeFile(t, work, "private_key.pem", seed)
	writeFile(t, work, "public_key.pem", pub)

	signed := runRcli(t, "hello world", "text", "sign", "--format", "ed25519")
	require.NoError(t, signed.err)
	writeFile(t, work, "signature.sig", []byte(signed.stdout))

	verified := runRcli(t, "hello world", "text", "verify", "--format", "ed25519")
	require.NoError(t, verified.err)

	mismatch := runRcli(t, "hello there", "text", "verify", "--format", "ed25519")
	require.ErrorIs(t, mismatch.err, errors.ErrSignatureMismatch)
}

func TestTextVerify_FormatSwap(t *testing.T) {
	work := isolate(t)
	key := writeFile(t, work, "mac.key", make([]byte, 32))
	sig := writeFile(t, work, "signature.sig", []byte(helloWorldBlake3))

	res := runRcli(t, "hello world", "text", "verify", "--format", "ed25519", "-k", key, "-s", sig)
	require.Error(t, res.err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
}

func TestTextVerify_MalformedSignature(t *testing.T) {
	work := isolate(t)
	key := writeFile(t, work, "mac.key", make([]byte, 32))
	sig := writeFile(t, work, "signature.sig", []byte("not*base64"))

	res := runRcli(t, "hello world", "text", "verify", "-k", key, "-s", sig)
	require.ErrorIs(t, res.err, errors.ErrSignatureDecode)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
}

func TestTextVerify_MissingSignatureFile(t *testing.T) {
	work := isolate(t)
	key := writeFile(t, work, "mac.key", make([]byte, 32))

	res := runRcli(t, "hello world", "text", "verify", "-k", key)
	require.ErrorIs(t, res.err, errors.ErrSignatureFileNotFound)
}

func TestTextSign_Batch(t *testing.T) {
	work := isolate(t)
	key := writeFile(t, work, "mac.key", make([]byte, 32))
	a := writeFile(t, work, "a.txt", []byte("hello world"))
	b := writeFile(t, work, "b.txt", []byte("hello world"))

	res := runRcli(t, "", "text", "sign", "-k", key, "-i", a, "-i", b)
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, helloWorldBlake3+"  "+a, lines[0])
	assert.Equal(t, helloWorldBlake3+"  "+b, lines[1])
}

func TestTextSign_BatchRejectsDirectory(t *testing.T) {
	work := isolate(t)
	key := writeFile(t, work, "mac.key", make([]byte, 32))
	a := writeFile(t, work, "a.txt", []byte("hello world"))
	dir := t.TempDir()

	res := runRcli(t, "", "text", "sign", "-k", key, "-i", a, "-i", dir, "-o", "json")
	require.ErrorIs(t, res.err, errors.ErrInvalidArgument)
	assert.Empty(t, res.stdout)
}

func TestTextSign_BatchStdinTwice(t *testing.T) {
	work := isolate(t)
	key := writeFile(t, work, "mac.key", make([]byte, 32))

	res := runRcli(t, "hello", "text", "sign", "-k", key, "-i", "-", "-i", "-")
	require.ErrorIs(t, res.err, errors.ErrStdinReused)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
}
