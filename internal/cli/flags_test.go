package cli

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
)

func TestExitCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitError)
	assert.Equal(t, 2, ExitInvalidInput)
	assert.Equal(t, 3, ExitSignatureMismatch)
}

func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidOutputFormat("text"))
	assert.True(t, IsValidOutputFormat("json"))
	assert.False(t, IsValidOutputFormat("yaml"))
	assert.False(t, IsValidOutputFormat(""))
	assert.Equal(t, []string{"text", "json"}, ValidOutputFormats())
}

func TestAddGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	flags := &GlobalFlags{}
	AddGlobalFlags(cmd, flags)

	for _, name := range []string{"output", "verbose", "quiet"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "o", cmd.PersistentFlags().Lookup("output").Shorthand)

	require.NoError(t, cmd.PersistentFlags().Parse([]string{"-o", "json", "-v"}))
	assert.Equal(t, "json", flags.Output)
	assert.True(t, flags.Verbose)
}

func TestBindGlobalFlags(t *testing.T) {
	t.Setenv("RCLI_QUIET", "true")

	cmd := &cobra.Command{Use: "test"}
	flags := &GlobalFlags{}
	AddGlobalFlags(cmd, flags)

	v := viper.New()
	require.NoError(t, BindGlobalFlags(v, cmd))
	resolveGlobalFlags(v, flags)

	assert.Equal(t, OutputText, flags.Output)
	assert.True(t, flags.Quiet)
	assert.False(t, flags.Verbose)
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"signature mismatch", errors.ErrSignatureMismatch, ExitSignatureMismatch},
		{"wrapped mismatch", fmt.Errorf("verify: %w", errors.ErrSignatureMismatch), ExitSignatureMismatch},
		{"key size", errors.Wrap(errors.ErrInvalidKeySize, "loading"), ExitInvalidInput},
		{"signature size", errors.ErrInvalidSignatureSize, ExitInvalidInput},
		{"missing input", errors.ErrInputNotFound, ExitInvalidInput},
		{"unsupported format", errors.ErrUnsupportedFormat, ExitInvalidInput},
		{"exit code 2 wrapper", errors.NewExitCode2Error(stderrors.New("boom")), ExitInvalidInput},
		{"cobra unknown flag", stderrors.New("unknown flag: --nope"), ExitInvalidInput},
		{"cobra required flag", stderrors.New(`required flag(s) "input" not set`), ExitInvalidInput},
		{"read failure", errors.ErrReadInput, ExitError},
		{"unknown error", stderrors.New("disk on fire"), ExitError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCodeForError(tc.err))
		})
	}
}
