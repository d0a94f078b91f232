package watcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultDebounceWindow is the quiet period before a burst of events is reported.
const DefaultDebounceWindow = 50 * time.Millisecond

const eventChannelBuffer = 16

// Watcher watches a single options file. It watches the parent directory so
// editors that save by renaming a temporary file are still observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	prints    *Fingerprints
	debouncer *Debouncer
	target    string
	events    chan ports.WatchEvent

	mu     sync.Mutex
	closed bool
}

// NewWatcher creates a watcher with the default debounce window.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	return NewWatcherWithWindow(logger, DefaultDebounceWindow)
}

// NewWatcherWithWindow creates a watcher with a custom debounce window.
func NewWatcherWithWindow(logger ports.Logger, window time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	w := &Watcher{
		fsWatcher: fsw,
		logger:    logger,
		prints:    NewFingerprints(),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}
	w.debouncer = NewDebouncer(window, w.emit)
	return w, nil
}

// Start begins watching path.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve watched file"), "path", path)
	}
	w.target = abs

	if err := w.prints.Seed(abs); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read watched file"), "path", abs)
	}
	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", filepath.Dir(abs))
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of coalesced change events. It ends when the
// watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Name != w.target || event.Op == fsnotify.Chmod {
				continue
			}
			w.debouncer.Add(event.Name)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn(fmt.Sprintf("watcher: %v", err))
			}
		}
	}
}

// emit turns debounced paths into events. Unchanged content is dropped.
func (w *Watcher) emit(paths []string) {
	for _, path := range paths {
		event := ports.WatchEvent{Path: path, Operation: ports.OpWrite}

		changed, err := w.prints.Changed(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			event.Operation = ports.OpRemove
		case err != nil:
			if w.logger != nil {
				w.logger.Warn(fmt.Sprintf("watcher: %v", err))
			}
			continue
		case !changed:
			continue
		}
		w.send(event)
	}
}

func (w *Watcher) send(event ports.WatchEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.events <- event:
	default:
		// reader is behind, a later event will carry the newest content
	}
}

func (w *Watcher) close() {
	w.debouncer.Flush()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	close(w.events)
}
