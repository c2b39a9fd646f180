package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"river-stream/pkg/core"
)

// reloadDelay coalesces the bursts of events editors produce on save.
const reloadDelay = 150 * time.Millisecond

// Watch reloads the config file at path whenever it changes and passes the
// result to onChange. The parent directory is watched so that editors which
// save by renaming a temp file are picked up. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, log core.Logger, onChange func(*Config, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}
	log.Info("Watching configuration", "path", target)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("Config change detected", "op", ev.Op.String())
			pending = time.After(reloadDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("Config watcher error", err)
		case <-pending:
			pending = nil
			cfg, err := LoadFromFile(target)
			onChange(cfg, err)
		}
	}
}
