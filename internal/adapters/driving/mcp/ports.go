package mcp

import (
	"github.com/custodia-labs/vocab/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Provider serves virtual:vocabulary.
	Provider driving.ModuleProvider

	// Vocabulary loads and renders the vocabulary file.
	Vocabulary driving.VocabularyService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Provider == nil {
		return ErrMissingModuleProvider
	}
	// Vocabulary is optional; the document resource and generate tool need it
	return nil
}
