package mcp

import (
	"context"

	"github.com/custodia-labs/vocab/internal/core/domain"
	"github.com/custodia-labs/vocab/internal/core/ports/driving"
)

// mockModuleProvider is a mock implementation of driving.ModuleProvider.
type mockModuleProvider struct {
	code    string
	err     error
	loadIDs []string
}

func (m *mockModuleProvider) Resolve(id string) (string, bool) {
	if id != domain.ReservedID {
		return "", false
	}
	return domain.InternalID, true
}

func (m *mockModuleProvider) Load(_ context.Context, id string) (string, bool, error) {
	m.loadIDs = append(m.loadIDs, id)
	if id != domain.InternalID {
		return "", false, nil
	}
	if m.err != nil {
		return "", true, m.err
	}
	return m.code, true, nil
}

func (m *mockModuleProvider) SourcePath() string {
	return "/project/vocabulary.toml"
}

// mockVocabularyService is a mock implementation of driving.VocabularyService.
type mockVocabularyService struct {
	file       *domain.VocabularyFile
	content    string
	err        error
	lastTarget domain.Target
	lastOpts   map[string]any
}

func (m *mockVocabularyService) Document(_ context.Context) (*domain.VocabularyFile, error) {
	return m.file, m.err
}

func (m *mockVocabularyService) Generate(
	_ context.Context,
	target domain.Target,
	opts map[string]any,
) (string, error) {
	m.lastTarget = target
	m.lastOpts = opts
	return m.content, m.err
}

func (m *mockVocabularyService) Check(_ context.Context, manifestPath string) (*driving.CheckReport, error) {
	return &driving.CheckReport{ManifestPath: manifestPath}, m.err
}

func (m *mockVocabularyService) Watch(
	_ context.Context,
	_ domain.Target,
	_ map[string]any,
	_ func(string, error),
) error {
	return m.err
}
