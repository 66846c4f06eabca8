// Package watch rebuilds a post whenever its definition file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/patterns/internal/logfields"
	"github.com/fsnotify/fsnotify"
)

// RebuildFunc is called after the watched file settles.
type RebuildFunc func(ctx context.Context) error

// Watcher monitors a single file and triggers debounced rebuilds.
type Watcher struct {
	path     string
	debounce time.Duration
	rebuild  RebuildFunc
	logger   *slog.Logger
}

// New creates a watcher for path. The directory is watched rather than the
// file itself so editors that replace files on save are still observed.
func New(path string, debounce time.Duration, rebuild RebuildFunc) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}
	return &Watcher{
		path:     absPath,
		debounce: debounce,
		rebuild:  rebuild,
		logger:   slog.Default(),
	}, nil
}

// Run blocks until ctx is canceled. Rebuild errors are logged and do not stop watching.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if err := fsw.Close(); err != nil {
			w.logger.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.logger.Info("Watching post definition", logfields.Path(w.path))

	name := filepath.Base(w.path)
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Remove) {
				w.logger.Warn("Post definition removed", logfields.Path(event.Name))
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("Post definition change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := w.rebuild(ctx); err != nil {
				w.logger.Error("Rebuild failed", logfields.Error(err))
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", logfields.Error(err))
		}
	}
}
