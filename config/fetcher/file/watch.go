package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls notify(nil) whenever the file at fpath is written, created or
// renamed into place, and notify(err) when the underlying watcher fails.
// The parent directory is watched so atomic replace-by-rename is seen.
// Watching ends when ctx is done or the returned stop function is called.
func Watch(ctx context.Context, fpath string, notify func(error)) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	cleanPath := filepath.Clean(fpath)
	dir := filepath.Dir(cleanPath)

	err = watcher.Add(dir)
	if err != nil {
		_ = watcher.Close()

		return nil, fmt.Errorf("watching directory %q: %w", dir, err)
	}

	name := filepath.Base(cleanPath)

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Base(event.Name) != name {
					continue
				}

				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					notify(nil)
				}
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}

				notify(watchErr)
			case <-ctx.Done():
				_ = watcher.Close()

				return
			}
		}
	}()

	return watcher.Close, nil
}
