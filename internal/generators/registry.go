// Package generators provides the code generation targets for a vocabulary.
package generators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/vocab/internal/core/domain"
	"github.com/custodia-labs/vocab/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.GeneratorRegistry = (*Registry)(nil)

// BuilderFunc creates a Generator from generic options.
// Options is a map of target-specific settings, typically from CLI flags.
type BuilderFunc func(opts map[string]any) (driven.Generator, error)

// Registry maps target names to their builders.
type Registry struct {
	builders map[domain.Target]BuilderFunc
}

// NewRegistry creates a new empty generator registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[domain.Target]BuilderFunc),
	}
}

// Register adds a generator builder to the registry.
// Target should match the generator's Name() return value.
func (r *Registry) Register(target domain.Target, builder BuilderFunc) {
	r.builders[target] = builder
}

// Build creates a generator for the target with the given options.
// Returns an error wrapping domain.ErrUnknownTarget if the target is not registered.
func (r *Registry) Build(target domain.Target, opts map[string]any) (driven.Generator, error) {
	builder, ok := r.builders[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			domain.ErrUnknownTarget, target, strings.Join(r.Names(), ", "))
	}
	return builder(opts)
}

// Has returns true if a generator for the target is registered.
func (r *Registry) Has(target domain.Target) bool {
	_, ok := r.builders[target]
	return ok
}

// Names returns all registered target names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for target := range r.builders {
		names = append(names, string(target))
	}
	sort.Strings(names)
	return names
}
