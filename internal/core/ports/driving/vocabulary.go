package driving

import (
	"context"

	"github.com/custodia-labs/vocab/internal/core/domain"
)

// CheckReport is the outcome of validating the vocabulary file.
type CheckReport struct {
	// Path is the vocabulary file that was checked.
	Path string

	// ManifestPath is the build manifest compared against, if any.
	ManifestPath string

	// ManifestFound is false when the manifest could not be read.
	ManifestFound bool

	// Warnings lists executable names missing from the manifest.
	Warnings []string
}

// VocabularyService exposes the vocabulary to the CLI and MCP adapters.
type VocabularyService interface {
	// Document loads and validates the vocabulary file.
	Document(ctx context.Context) (*domain.VocabularyFile, error)

	// Generate renders the vocabulary for a target with target-specific options.
	Generate(ctx context.Context, target domain.Target, opts map[string]any) (string, error)

	// Check validates the vocabulary and compares executable names with a build manifest.
	Check(ctx context.Context, manifestPath string) (*CheckReport, error)

	// Watch regenerates target output after every change to the vocabulary file.
	// Load failures are passed to onResult rather than ending the watch.
	Watch(ctx context.Context, target domain.Target, opts map[string]any, onResult func(string, error)) error
}
