package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is one reload attempt after a detected file change. Values carries
// the new snapshot when the reload succeeded; Err is set when it failed and
// the previous snapshot stayed installed.
type Event struct {
	Values map[string]any
	Err    error
}

// Watcher reloads a Store when the settings file changes on disk.
// It watches the file's parent directory so atomic replaces (temp file +
// rename) and editors that rename into place are detected, with a polling
// fallback for missed events.
type Watcher struct {
	store    Watched
	interval time.Duration
	watcher  *fsnotify.Watcher

	mu      sync.Mutex
	lastMod time.Time
	lastLen int64
	closed  bool
}

// Watched is the minimal store surface the watcher drives.
type Watched interface {
	File() (string, error)
	Load() error
	All() map[string]any
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithInterval sets the polling fallback interval. Default one second.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.interval = d
	}
}

// NewWatcher creates a Watcher for the given store.
func NewWatcher(store Watched, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	w := &Watcher{
		store:    store,
		interval: time.Second,
		watcher:  fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch starts watching and returns a channel of reload events. The channel
// closes when the context is cancelled or Close is called. The store is not
// reloaded on start; only subsequent changes produce events.
func (w *Watcher) Watch(ctx context.Context) (<-chan Event, error) {
	path, err := w.store.File()
	if err != nil {
		return nil, err
	}

	if err := w.watcher.Add(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("watching settings directory: %w", err)
	}

	w.rememberStat(path)

	events := make(chan Event, 1)
	go w.watchLoop(ctx, path, events)
	return events, nil
}

// watchLoop is the event loop: fsnotify events for the settings file
// trigger a reload, and a ticker catches anything fsnotify missed.
func (w *Watcher) watchLoop(ctx context.Context, path string, events chan<- Event) {
	defer close(events)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.reloadIfChanged(ctx, path, events)
			}
		case <-ticker.C:
			w.reloadIfChanged(ctx, path, events)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Polling fallback covers missed events.
		}
	}
}

// reloadIfChanged reloads the store when the file's stat signature moved
// since the last reload, emitting one event per observed change.
func (w *Watcher) reloadIfChanged(ctx context.Context, path string, events chan<- Event) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}

	w.mu.Lock()
	changed := !info.ModTime().Equal(w.lastMod) || info.Size() != w.lastLen
	if changed {
		w.lastMod = info.ModTime()
		w.lastLen = info.Size()
	}
	w.mu.Unlock()
	if !changed {
		return
	}

	ev := Event{}
	if err := w.store.Load(); err != nil {
		ev.Err = err
	} else {
		ev.Values = w.store.All()
	}

	select {
	case events <- ev:
	case <-ctx.Done():
	}
}

// rememberStat records the file's current stat signature so the first tick
// does not fire a spurious reload.
func (w *Watcher) rememberStat(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	w.lastMod = info.ModTime()
	w.lastLen = info.Size()
	w.mu.Unlock()
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}
