package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil capture service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCaptureService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Capture: &mockCaptureService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("all ports creates server", func(t *testing.T) {
		ports := &Ports{
			Capture:  &mockCaptureService{},
			History:  &mockHistoryService{},
			Settings: &mockSettingsService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil capture service returns error", func(t *testing.T) {
		ports := &Ports{History: &mockHistoryService{}}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingCaptureService)
	})

	t.Run("capture only is valid", func(t *testing.T) {
		ports := &Ports{
			Capture: &mockCaptureService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}

func TestNewServer_NilPorts(t *testing.T) {
	server, err := NewServer(nil)

	assert.Nil(t, server)
	assert.ErrorIs(t, err, ErrMissingCaptureService)
}

func TestRunHTTP_StopsOnCancel(t *testing.T) {
	server, err := NewServer(&Ports{Capture: &mockCaptureService{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.RunHTTP(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunHTTP did not return after cancel")
	}
}
