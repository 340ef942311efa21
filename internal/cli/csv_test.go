package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rcli/internal/errors"
)

const playersCSV = "Name,Position,Nationality\nMarcus,Forward,England\nBruno,Midfielder,Portugal\n"

// runCSVCmd runs the csv command alone with injected prompt behavior.
func runCSVCmd(t *testing.T, opts *csvOptions, args ...string) (string, error) {
	t.Helper()

	cmd := newCSVCmdWithOptions(opts)
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func nonInteractive() *csvOptions {
	return &csvOptions{
		confirm: func(string, bool) (bool, error) {
			panic("confirm must not be called")
		},
		interactive: func() bool { return false },
	}
}

func TestCSV_ToJSON(t *testing.T) {
	work := isolate(t)
	in := writeFile(t, work, "players.csv", []byte(playersCSV))

	res := runRcli(t, "", "csv", "-i", in)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Wrote 2 records to output.json")

	data, err := os.ReadFile(filepath.Join(work, "output.json"))
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Marcus", rows[0]["Name"])
	assert.Equal(t, "Portugal", rows[1]["Nationality"])
}

func TestCSV_ToYAMLWithoutHeader(t *testing.T) {
	work := isolate(t)
	in := writeFile(t, work, "data.csv", []byte("a;b\nc;d\n"))
	out := filepath.Join(work, "data.yaml")

	res := runRcli(t, "", "csv", "-i", in, "--out", out, "--format", "yaml", "-d", ";", "--header=false")
	require.NoError(t, res.err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, yaml.Unmarshal(data, &rows))
	assert.Equal(t, []map[string]string{
		{"column_1": "a", "column_2": "b"},
		{"column_1": "c", "column_2": "d"},
	}, rows)
}

func TestCSV_RequiresInput(t *testing.T) {
	isolate(t)

	res := runRcli(t, "", "csv")
	require.Error(t, res.err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
}

func TestCSV_InvalidDelimiter(t *testing.T) {
	work := isolate(t)
	in := writeFile(t, work, "players.csv", []byte(playersCSV))

	res := runRcli(t, "", "csv", "-i", in, "-d", ";;")
	require.ErrorIs(t, res.err, errors.ErrInvalidDelimiter)
}

func TestCSV_Overwrite(t *testing.T) {
	t.Run("non-interactive without force", func(t *testing.T) {
		work := isolate(t)
		in := writeFile(t, work, "players.csv", []byte(playersCSV))
		out := writeFile(t, work, "output.json", []byte("keep"))

		_, err := runCSVCmd(t, nonInteractive(), "-i", in)
		require.ErrorIs(t, err, errors.ErrNonInteractiveMode)

		data, readErr := os.ReadFile(out)
		require.NoError(t, readErr)
		assert.Equal(t, "keep", string(data))
	})

	t.Run("force overwrites", func(t *testing.T) {
		work := isolate(t)
		in := writeFile(t, work, "players.csv", []byte(playersCSV))
		out := writeFile(t, work, "output.json", []byte("keep"))

		_, err := runCSVCmd(t, nonInteractive(), "-i", in, "--force")
		require.NoError(t, err)

		data, readErr := os.ReadFile(out)
		require.NoError(t, readErr)
		assert.Contains(t, string(data), "Marcus")
	})

	t.Run("declined prompt", func(t *testing.T) {
		work := isolate(t)
		in := writeFile(t, work, "players.csv", []byte(playersCSV))
		writeFile(t, work, "output.json", []byte("keep"))

		var asked string
		opts := &csvOptions{
			confirm: func(msg string, defaultYes bool) (bool, error) {
				asked = msg
				assert.False(t, defaultYes)
				return false, nil
			},
			interactive: func() bool { return true },
		}

		_, err := runCSVCmd(t, opts, "-i", in)
		require.ErrorIs(t, err, errors.ErrOutputExists)
		assert.Contains(t, asked, "output.json already exists")
	})

	t.Run("accepted prompt", func(t *testing.T) {
		work := isolate(t)
		in := writeFile(t, work, "players.csv", []byte(playersCSV))
		writeFile(t, work, "output.json", []byte("keep"))

		opts := &csvOptions{
			confirm:     func(string, bool) (bool, error) { return true, nil },
			interactive: func() bool { return true },
		}

		stdout, err := runCSVCmd(t, opts, "-i", in)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Wrote 2 records")
	})

	t.Run("canceled prompt", func(t *testing.T) {
		work := isolate(t)
		in := writeFile(t, work, "players.csv", []byte(playersCSV))
		writeFile(t, work, "output.json", []byte("keep"))

		opts := &csvOptions{
			confirm:     func(string, bool) (bool, error) { return false, errors.ErrMenuCanceled },
			interactive: func() bool { return true },
		}

		_, err := runCSVCmd(t, opts, "-i", in)
		require.ErrorIs(t, err, errors.ErrMenuCanceled)
	})

	t.Run("directory target", func(t *testing.T) {
		work := isolate(t)
		in := writeFile(t, work, "players.csv", []byte(playersCSV))
		require.NoError(t, os.Mkdir(filepath.Join(work, "output.json"), 0o750))

		_, err := runCSVCmd(t, nonInteractive(), "-i", in, "--force")
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
	})
}
