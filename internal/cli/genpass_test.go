package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/genpass"
)

func TestGenPass_Default(t *testing.T) {
	isolate(t)

	res := runRcli(t, "", "genpass")
	require.NoError(t, res.err)
	assert.Len(t, strings.TrimSuffix(res.stdout, "\n"), 16)
}

func TestGenPass_DigitsOnly(t *testing.T) {
	isolate(t)

	res := runRcli(t, "", "genpass", "-l", "24", "--uppercase=false", "--lowercase=false", "--symbols=false")
	require.NoError(t, res.err)

	pw := strings.TrimSuffix(res.stdout, "\n")
	require.Len(t, pw, 24)
	for _, c := range pw {
		assert.Contains(t, genpass.Numbers, string(c))
	}
}

func TestGenPass_ConfigAndFlagPrecedence(t *testing.T) {
	work := isolate(t)
	writeFile(t, work, ".rcli/config.yaml", []byte("genpass:\n  length: 32\n  symbols: false\n"))

	res := runRcli(t, "", "genpass")
	require.NoError(t, res.err)
	pw := strings.TrimSuffix(res.stdout, "\n")
	assert.Len(t, pw, 32)
	assert.False(t, strings.ContainsAny(pw, genpass.Symbols))

	res = runRcli(t, "", "genpass", "-l", "8")
	require.NoError(t, res.err)
	assert.Len(t, strings.TrimSuffix(res.stdout, "\n"), 8)
}

func TestGenPass_Errors(t *testing.T) {
	isolate(t)

	res := runRcli(t, "", "genpass", "-l", "2")
	require.ErrorIs(t, res.err, errors.ErrInvalidPasswordLength)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))

	res = runRcli(t, "", "genpass", "--uppercase=false", "--lowercase=false", "--numbers=false", "--symbols=false")
	require.ErrorIs(t, res.err, errors.ErrNoCharacterSets)
}
