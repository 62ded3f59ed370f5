package driven

import (
	"context"

	"github.com/custodia-labs/vocab/internal/core/domain"
)

// Generator renders a loaded vocabulary into source text for one target.
type Generator interface {
	// Name returns the target name for logging and configuration.
	Name() string

	// Generate renders the vocabulary file. Output must be a pure function
	// of the document so that regenerating an unchanged file is byte-identical.
	Generate(ctx context.Context, file *domain.VocabularyFile) (string, error)
}

// GeneratorRegistry builds generators by target name.
type GeneratorRegistry interface {
	// Build creates a generator for target configured with opts.
	// Unknown targets return an error wrapping domain.ErrUnknownTarget.
	Build(target domain.Target, opts map[string]any) (Generator, error)

	// Has reports whether target is registered.
	Has(target domain.Target) bool

	// Names returns the registered target names, sorted.
	Names() []string
}
