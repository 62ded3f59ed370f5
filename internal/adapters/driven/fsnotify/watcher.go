// Package fsnotify implements the driven.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the directory containing a single file, so editors that save by
// writing a temp file and renaming it over the original are still observed,
// and debounces rapid events (editors often trigger multiple writes per save).
package fsnotify

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/vocab/internal/core/ports/driven"
)

// Ensure Watcher implements the interface.
var _ driven.Watcher = (*Watcher)(nil)

// DefaultDebounce is the quiet period after the last event before onChange fires.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches one file for changes.
type Watcher struct {
	debounce time.Duration
}

// Option configures the watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce interval. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher creates a new file watcher.
func NewWatcher(opts ...Option) *Watcher {
	w := &Watcher{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch blocks until ctx is cancelled, calling onChange once per burst of
// write, create, rename or remove events on path. It returns nil on
// cancellation and an error if the underlying watcher fails. It does not
// return while onChange is running.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: resolve path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	defer fw.Close() //nolint:errcheck // best-effort cleanup

	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch: add directory %q: %w", filepath.Dir(absPath), err)
	}

	var (
		mu      sync.Mutex
		timer   *time.Timer
		fireMu  sync.Mutex
		stopped bool
	)
	// Once Watch returns, onChange has finished and will not run again.
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()

		fireMu.Lock()
		stopped = true
		fireMu.Unlock()
	}()

	// Calls to onChange never overlap.
	fire := func() {
		fireMu.Lock()
		defer fireMu.Unlock()
		if stopped || ctx.Err() != nil {
			return
		}
		onChange()
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return fmt.Errorf("watch: fsnotify event channel closed unexpectedly")
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			mu.Lock()
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-fw.Errors:
			if !ok {
				return fmt.Errorf("watch: fsnotify error channel closed unexpectedly")
			}
			return fmt.Errorf("watch: fsnotify error: %w", err)
		}
	}
}
