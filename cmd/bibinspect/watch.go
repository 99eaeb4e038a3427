package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// watchFiles calls onChange with the path of any of paths that is written or
// created, until ctx is cancelled.  Directories are watched rather than the
// files themselves so that editors which replace files on save are seen.
func watchFiles(ctx context.Context, logger zerolog.Logger, paths []string, onChange func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	wanted := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		wanted[abs] = p
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
		logger.Debug().Str("dir", dir).Msg("watching directory")
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			p, ok := wanted[abs]
			if !ok {
				continue
			}
			logger.Debug().Str("file", p).Str("op", event.Op.String()).Msg("file changed")
			onChange(p)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// usually recoverable
			logger.Warn().Err(err).Msg("watcher error")
		}
	}
}
