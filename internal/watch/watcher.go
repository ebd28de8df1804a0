package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RebuildFunc re-runs the composition after an input change.
type RebuildFunc func(ctx context.Context) error

// Watcher monitors the project file and the env files and triggers a
// debounced rebuild when any of them changes.
type Watcher struct {
	configPath   string
	watched      map[string]struct{}
	rebuild      RebuildFunc
	watcher      *fsnotify.Watcher
	mu           sync.RWMutex
	stopChan     chan struct{}
	rebuildChan  chan struct{}
	debounceTime time.Duration
}

// NewWatcher creates a watcher for configPath plus the .env/.env.local files
// next to it.
func NewWatcher(configPath string, rebuild RebuildFunc) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	watched := map[string]struct{}{
		filepath.Base(absPath): {},
		".env":                 {},
		".env.local":           {},
	}

	return &Watcher{
		configPath:   absPath,
		watched:      watched,
		rebuild:      rebuild,
		watcher:      watcher,
		stopChan:     make(chan struct{}),
		rebuildChan:  make(chan struct{}, 1),
		debounceTime: 500 * time.Millisecond, // Coalesce editor save bursts
	}, nil
}

// Start begins monitoring. Watching the containing directory is more reliable
// than watching the files directly (editors replace files on save).
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	dir := filepath.Dir(w.configPath)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	slog.Info("Watching for input changes", "config_path", w.configPath)

	go w.watchLoop(ctx)
	go w.rebuildLoop(ctx)

	return nil
}

// Stop stops the watcher and its goroutines.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	close(w.stopChan)
	if w.watcher != nil {
		if err := w.watcher.Close(); err != nil {
			return fmt.Errorf("failed to close file watcher: %w", err)
		}
	}
	return nil
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if _, tracked := w.watched[filepath.Base(event.Name)]; !tracked {
				continue
			}
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write,
				event.Op&fsnotify.Create == fsnotify.Create,
				event.Op&fsnotify.Rename == fsnotify.Rename:
				slog.Debug("Input change detected", "file", event.Name, "op", event.Op.String())
				w.triggerRebuild()
			case event.Op&fsnotify.Remove == fsnotify.Remove:
				slog.Warn("Watched input removed", "file", event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Watcher error", "error", err)
		}
	}
}

// rebuildLoop debounces change notifications into rebuild runs. Rebuilds
// execute on this goroutine, so two runs can never overlap: triggers arriving
// mid-rebuild wait in rebuildChan until the current run finishes.
func (w *Watcher) rebuildLoop(ctx context.Context) {
	timer := time.NewTimer(w.debounceTime)
	stopTimer(timer)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-w.rebuildChan:
			stopTimer(timer)
			timer.Reset(w.debounceTime)
		case <-timer.C:
			if err := w.rebuild(ctx); err != nil {
				slog.Error("Rebuild failed", "error", err)
			}
		}
	}
}

// stopTimer stops t and drains a fire that already reached the channel.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

func (w *Watcher) triggerRebuild() {
	select {
	case w.rebuildChan <- struct{}{}:
	default:
		// Rebuild already pending
	}
}
