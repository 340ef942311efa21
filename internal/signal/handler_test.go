package signal

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_SignalCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handleSignal(syscall.SIGINT)

	require.Error(t, h.Context().Err())
	assert.Equal(t, context.Canceled, h.Context().Err())
	assert.Equal(t, syscall.SIGINT, h.Received())
}

func TestHandler_ExitCode(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	_, ok := h.ExitCode()
	assert.False(t, ok)

	h.handleSignal(syscall.SIGTERM)
	code, ok := h.ExitCode()
	require.True(t, ok)
	assert.Equal(t, 143, code)
}

func TestHandler_OnlyFirstSignalCounts(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handleSignal(syscall.SIGINT)
	h.handleSignal(syscall.SIGTERM)

	code, ok := h.ExitCode()
	require.True(t, ok)
	assert.Equal(t, 130, code)
}

func TestHandler_StopCancelsWithoutSignal(t *testing.T) {
	h := NewHandler(context.Background())
	h.Stop()
	h.Stop()

	assert.Error(t, h.Context().Err())
	assert.Nil(t, h.Received())
}

func TestHandler_ParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	h := NewHandler(parent)
	defer h.Stop()

	cancel()

	select {
	case <-h.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("context not canceled with parent")
	}
	assert.Nil(t, h.Received())
}

func TestHandler_RealSignal(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.sigChan <- syscall.SIGINT

	select {
	case <-h.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("context not canceled after signal")
	}
	assert.Eventually(t, func() bool { return h.Received() == syscall.SIGINT }, time.Second, 10*time.Millisecond)
}
