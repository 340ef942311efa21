package tui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestNewMenuConfig(t *testing.T) {
	unsetEnv(t, "ACCESSIBLE")
	cfg := NewMenuConfig()
	assert.Equal(t, DefaultMenuWidth, cfg.Width)
	assert.False(t, cfg.Accessible)

	t.Setenv("ACCESSIBLE", "1")
	assert.True(t, NewMenuConfig().Accessible)
}

func TestAdaptWidth_NoTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // fd fits in int
		t.Skip("requires stdout without a terminal")
	}

	assert.Equal(t, 60, adaptWidth(60))
	assert.Equal(t, DefaultMenuWidth, adaptWidth(0))
}

func TestConfirm_NonInteractive(t *testing.T) {
	if IsInteractive() {
		t.Skip("requires a non-interactive test run")
	}

	ok, err := Confirm("Overwrite?", true)
	require.ErrorIs(t, err, ErrMenuCanceled)
	assert.False(t, ok)
}

func TestRcliTheme(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, RcliTheme())
}
