package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/supporttools/homedash/pkg/logger"
)

// Watcher watches the configuration file for changes and reloads the
// Loader when it changes. Events are debounced so editors that write in
// several steps trigger a single reload.
type Watcher struct {
	loader           *Loader
	debounceInterval time.Duration
	watcher          *fsnotify.Watcher
	onReload         func(*DashboardConfig)
	mu               sync.Mutex
	running          bool
	stopCh           chan struct{}
}

// NewWatcher creates a watcher for the loader's configuration file.
// onReload, if non-nil, is called with the new configuration after each
// successful reload.
func NewWatcher(loader *Loader, debounceInterval time.Duration, onReload func(*DashboardConfig)) (*Watcher, error) {
	if debounceInterval <= 0 {
		debounceInterval = 500 * time.Millisecond
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		loader:           loader,
		debounceInterval: debounceInterval,
		watcher:          fw,
		onReload:         onReload,
		stopCh:           make(chan struct{}),
	}, nil
}

// Start begins watching. The directory is watched rather than the file so
// atomic writes (rename over the original) are still seen.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("watcher already running")
	}

	dir := filepath.Dir(w.loader.Path())
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	w.running = true
	go w.processEvents(ctx)

	logger.WithField("path", w.loader.Path()).Info("Watching configuration file for changes")
	return nil
}

// Stop stops watching.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	close(w.stopCh)
	w.watcher.Close()
	w.running = false
}

func (w *Watcher) processEvents(ctx context.Context) {
	var debounceTimer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.isConfigFileEvent(event) {
				continue
			}

			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.NewTimer(w.debounceInterval)
				timerCh = debounceTimer.C
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.WithError(err).Warn("Configuration watcher error")

		case <-timerCh:
			timerCh = nil
			if err := w.loader.Reload(); err != nil {
				continue
			}
			if w.onReload != nil {
				w.onReload(w.loader.Config())
			}
		}
	}
}

// isConfigFileEvent checks whether the event is for the watched file,
// including the ..data symlink pattern used by Kubernetes ConfigMap mounts.
func (w *Watcher) isConfigFileEvent(event fsnotify.Event) bool {
	eventPath := filepath.Clean(event.Name)
	configPath := filepath.Clean(w.loader.Path())

	if eventPath == configPath {
		return true
	}

	if filepath.Base(eventPath) == "..data" && filepath.Dir(eventPath) == filepath.Dir(configPath) {
		return true
	}

	return false
}
