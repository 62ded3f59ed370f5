package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/vocab/internal/core/domain"
	"github.com/custodia-labs/vocab/internal/core/ports/driven"
)

// Ensure VocabularyStore implements the interface.
var _ driven.VocabularyStore = (*VocabularyStore)(nil)

// ErrRootRequired is returned when no project root is given.
var ErrRootRequired = errors.New("project root is required")

// VocabularyStore reads vocabulary.toml from a project root.
// It holds no parsed state; every Load reads the file from disk.
type VocabularyStore struct {
	filePath string
}

// NewVocabularyStore creates a store for <root>/vocabulary.toml.
// The root is made absolute once, so later changes to the process working
// directory do not move the file.
func NewVocabularyStore(root string) (*VocabularyStore, error) {
	if root == "" {
		return nil, ErrRootRequired
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	return &VocabularyStore{
		filePath: filepath.Join(absRoot, domain.VocabularyFileName),
	}, nil
}

// Load reads, parses and validates the vocabulary file.
func (s *VocabularyStore) Load(ctx context.Context) (*domain.VocabularyFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFileAccess, err)
	}

	doc, err := parseDocument(s.filePath, data)
	if err != nil {
		return nil, err
	}

	vocab, err := domain.NewVocabulary(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.filePath, err)
	}

	return &domain.VocabularyFile{
		Path:       s.filePath,
		Document:   doc,
		Vocabulary: vocab,
	}, nil
}

// Path returns the vocabulary file path.
func (s *VocabularyStore) Path() string {
	return s.filePath
}

// parseDocument decodes TOML into an open-ended document.
// Decode errors carry the line and column of the offending token.
func parseDocument(path string, data []byte) (domain.Document, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: %s:%d:%d: %s", domain.ErrParse, path, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrParse, path, err)
	}

	if raw == nil {
		raw = make(map[string]any)
	}
	return domain.Document(raw), nil
}
