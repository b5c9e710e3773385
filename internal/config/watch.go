package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow — тишина после последнего события, после которой файл перечитывается.
const debounceWindow = 100 * time.Millisecond

// Watcher reloads the autoplay section when the config file changes.
type Watcher struct {
	path     string
	onChange func(AutoplayConfig)
	watcher  *fsnotify.Watcher
}

// NewWatcher watches the directory of path (editors often replace the file
// by rename, which drops a watch on the file itself).
func NewWatcher(path string, onChange func(AutoplayConfig)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("resolving config path %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{path: abs, onChange: onChange, watcher: w}, nil
}

// Run delivers reloads until ctx is canceled. Parse errors keep the previous config.
// Reload fires once the file has been quiet for debounceWindow.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(debounceWindow)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounceWindow)

		case <-timer.C:
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadAutoplay(w.path)
	if err != nil {
		slog.Warn("config reload failed, keeping previous autoplay settings", "path", w.path, "error", err)
		return
	}
	slog.Info("autoplay config reloaded", "path", w.path)
	w.onChange(cfg)
}
