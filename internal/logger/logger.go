// Package logger provides verbose logging for the vocab CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users see where a module was loaded from
// and why generation failed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	base              = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  log.DebugLevel,
		Prefix: "vocab",
	})
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = newLogger(w)
}

// Debug logs a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Debugf(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info logs an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Infof(format, args...)
	}
}

// Warn logs a warning if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Warnf(format, args...)
	}
}
