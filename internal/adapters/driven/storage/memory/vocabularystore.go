package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/vocab/internal/core/domain"
	"github.com/custodia-labs/vocab/internal/core/ports/driven"
)

// Ensure VocabularyStore implements the interface.
var _ driven.VocabularyStore = (*VocabularyStore)(nil)

// VocabularyStore is an in-memory implementation of driven.VocabularyStore for testing.
// Each Load returns a deep copy, so callers never share a document.
type VocabularyStore struct {
	mu    sync.RWMutex
	path  string
	doc   domain.Document
	err   error
	loads int
}

// NewVocabularyStore creates a store that reports path and serves doc.
// A nil doc behaves like a missing file.
func NewVocabularyStore(path string, doc domain.Document) *VocabularyStore {
	return &VocabularyStore{
		path: path,
		doc:  doc,
	}
}

// Set replaces the served document.
func (s *VocabularyStore) Set(doc domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}

// SetError makes every following Load fail with err, until cleared with nil.
func (s *VocabularyStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Loads returns how many times Load was called.
func (s *VocabularyStore) Loads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loads
}

// Load returns a copy of the stored document.
func (s *VocabularyStore) Load(ctx context.Context) (*domain.VocabularyFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++

	if s.err != nil {
		return nil, s.err
	}
	if s.doc == nil {
		return nil, fmt.Errorf("%w: %s: not found", domain.ErrFileAccess, s.path)
	}

	doc, ok := copyValue(map[string]any(s.doc)).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: invalid document", domain.ErrParse, s.path)
	}

	vocab, err := domain.NewVocabulary(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	return &domain.VocabularyFile{
		Path:       s.path,
		Document:   domain.Document(doc),
		Vocabulary: vocab,
	}, nil
}

// Path returns the configured path.
func (s *VocabularyStore) Path() string {
	return s.path
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = copyValue(item)
		}
		return out
	case domain.Document:
		return copyValue(map[string]any(t))
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
