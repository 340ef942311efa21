package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/constants"
)

// cliResult captures one run of the root command.
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// isolate points RCLI_HOME and the working directory at empty temp dirs and
// returns the working directory.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv(constants.HomeEnvVar, t.TempDir())
	t.Setenv("RCLI_OUTPUT", "")
	work := t.TempDir()
	t.Chdir(work)
	return work
}

// runRcli executes the root command with args and stdin.
func runRcli(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	CloseLogFile()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
