package input

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/testutil"
)

func TestResolver_OpenStdin(t *testing.T) {
	t.Parallel()

	r := NewResolver(strings.NewReader("from stdin"))
	rc, err := r.Open("-")
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))
	assert.NoError(t, rc.Close())
}

func TestResolver_OpenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	data, err := NewResolver(nil).ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestResolver_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := NewResolver(nil).Open(path)
	require.ErrorIs(t, err, errors.ErrInputNotFound)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestResolver_ReadFailure(t *testing.T) {
	t.Parallel()

	r := NewResolver(testutil.FailingReader{Err: testutil.ErrMockRead})
	_, err := r.ReadAll("-")
	require.ErrorIs(t, err, errors.ErrReadInput)
	assert.ErrorIs(t, err, testutil.ErrMockRead)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"stdin", "-", nil},
		{"existing file", file, nil},
		{"missing file", filepath.Join(dir, "nope"), errors.ErrInputNotFound},
		{"directory", dir, errors.ErrInvalidArgument},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tc.input)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestIsStdin(t *testing.T) {
	t.Parallel()
	assert.True(t, IsStdin("-"))
	assert.False(t, IsStdin("--"))
	assert.False(t, IsStdin("file.txt"))
}
