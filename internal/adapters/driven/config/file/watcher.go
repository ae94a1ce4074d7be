package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/quickread-cli/internal/logger"
)

// Watcher reloads a ConfigStore whenever its file is written or created.
// The directory is watched rather than the file so that editors which
// save by renaming a temporary file are picked up.
type Watcher struct {
	store    *ConfigStore
	fs       *fsnotify.Watcher
	onChange func()
}

// NewWatcher starts watching the directory holding store's file.
// onChange, if set, runs after every successful reload.
func NewWatcher(store *ConfigStore, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(store.Path()), err)
	}
	return &Watcher{store: store, fs: fsw, onChange: onChange}, nil
}

// Run processes events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if err := w.store.Load(); err != nil {
				logger.Warn("reload config: %v", err)
				continue
			}
			logger.Debug("config reloaded after %s", event.Op)
			if w.onChange != nil {
				w.onChange()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}

// Close stops the watcher. Run returns once its channels drain.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != ConfigFileName {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
