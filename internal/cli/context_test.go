package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/config"
)

func TestExecutionContext_RoundTrip(t *testing.T) {
	t.Parallel()

	ec := &ExecutionContext{RunID: "run-1", Output: OutputJSON, Config: config.DefaultConfig()}
	ctx := WithExecutionContext(context.Background(), ec)

	got := GetExecutionContext(ctx)
	require.NotNil(t, got)
	assert.Same(t, ec, got)
}

func TestGetExecutionContext_Missing(t *testing.T) {
	t.Parallel()

	assert.Nil(t, GetExecutionContext(context.Background()))
}

func TestExecutionContextOrDefault(t *testing.T) {
	t.Parallel()

	t.Run("no context value", func(t *testing.T) {
		t.Parallel()
		ec := executionContextOrDefault(context.Background())
		require.NotNil(t, ec.Config)
		assert.Equal(t, OutputText, ec.Output)
		assert.Equal(t, "blake3", ec.Config.Text.Format)
	})

	t.Run("nil config filled in", func(t *testing.T) {
		t.Parallel()
		ctx := WithExecutionContext(context.Background(), &ExecutionContext{Output: OutputJSON})
		ec := executionContextOrDefault(ctx)
		require.NotNil(t, ec.Config)
		assert.Equal(t, OutputJSON, ec.Output)
	})
}
