package recorder

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch observes the transcript file at path while a recording runs and
// calls onGrowth with the file size after each write. It watches the
// parent directory because the file may not exist yet when the watcher
// starts (script creates it). Returns when ctx is cancelled.
func Watch(ctx context.Context, path string, onGrowth func(size int64)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	// Report the current size immediately in case the file already exists.
	if info, err := os.Stat(path); err == nil {
		onGrowth(info.Size())
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if info, err := os.Stat(path); err == nil {
				onGrowth(info.Size())
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Watcher errors are non-fatal for progress reporting.
		}
	}
}
