package driven

import "context"

// Watcher observes a single file and reports debounced changes.
type Watcher interface {
	// Watch blocks until ctx is cancelled, calling onChange after each
	// debounced write, create, rename or remove of path.
	Watch(ctx context.Context, path string, onChange func()) error
}
