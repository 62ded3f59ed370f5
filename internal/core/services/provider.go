package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/vocab/internal/core/domain"
	"github.com/custodia-labs/vocab/internal/core/ports/driven"
	"github.com/custodia-labs/vocab/internal/core/ports/driving"
	"github.com/custodia-labs/vocab/internal/logger"
)

// Ensure ModuleProvider implements the interface.
var _ driving.ModuleProvider = (*ModuleProvider)(nil)

// ModuleProvider serves virtual:vocabulary to a host build tool.
// It keeps no state between calls: each Load reads the vocabulary file
// again, so the module always reflects the file on disk.
type ModuleProvider struct {
	store     driven.VocabularyStore
	generator driven.Generator
}

// NewModuleProvider creates a provider reading from store and rendering with generator.
func NewModuleProvider(store driven.VocabularyStore, generator driven.Generator) *ModuleProvider {
	return &ModuleProvider{
		store:     store,
		generator: generator,
	}
}

// Resolve claims the reserved id. The match is exact and case-sensitive.
func (p *ModuleProvider) Resolve(requestedID string) (string, bool) {
	if requestedID != domain.ReservedID {
		return "", false
	}
	return domain.InternalID, true
}

// Load generates the module text for the internal id. Load errors are
// returned as-is for the host to surface; there is no fallback vocabulary.
func (p *ModuleProvider) Load(ctx context.Context, id string) (string, bool, error) {
	if id != domain.InternalID {
		return "", false, nil
	}

	logger.Section("Virtual Module Load")
	logger.Debug("Source: %s", p.store.Path())

	file, err := p.store.Load(ctx)
	if err != nil {
		logger.Debug("Load failed: %v", err)
		return "", true, fmt.Errorf("loading %s: %w", domain.ReservedID, err)
	}

	code, err := p.generator.Generate(ctx, file)
	if err != nil {
		logger.Debug("Generate failed: %v", err)
		return "", true, fmt.Errorf("generating %s: %w", domain.ReservedID, err)
	}

	logger.Debug("Generated %d bytes", len(code))
	return code, true, nil
}

// SourcePath returns the vocabulary file path.
func (p *ModuleProvider) SourcePath() string {
	return p.store.Path()
}
