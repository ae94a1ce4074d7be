package file

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("reading.rate_wpm", 400))

	changed := make(chan struct{}, 8)
	w, err := NewWatcher(store, func() { changed <- struct{}{} })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(store.Path(), []byte("[reading]\nrate_wpm = 275\n"), 0600))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config write")
	}
	assert.Eventually(t, func() bool {
		return store.GetInt("reading.rate_wpm") == 275
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	w, err := NewWatcher(store, nil)
	require.NoError(t, err)
	defer w.Close()

	assert.False(t, w.relevant(fsnotify.Event{Name: store.Path() + ".swp", Op: fsnotify.Write}))
	assert.False(t, w.relevant(fsnotify.Event{Name: store.Path(), Op: fsnotify.Chmod}))
	assert.True(t, w.relevant(fsnotify.Event{Name: store.Path(), Op: fsnotify.Write}))
	assert.True(t, w.relevant(fsnotify.Event{Name: store.Path(), Op: fsnotify.Create}))
}
