package driven

import (
	"context"

	"github.com/custodia-labs/vocab/internal/core/domain"
)

// VocabularyStore reads the vocabulary file from a fixed project root.
// Implementations must not cache: every Load reads the file again.
type VocabularyStore interface {
	// Load reads, parses and validates the vocabulary file.
	// Errors wrap domain.ErrFileAccess, domain.ErrParse or domain.ErrFieldAccess.
	Load(ctx context.Context) (*domain.VocabularyFile, error)

	// Path returns the absolute path of the vocabulary file.
	Path() string
}
