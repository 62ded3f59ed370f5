package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/vocab/internal/core/domain"
	"github.com/custodia-labs/vocab/internal/core/ports/driven"
)

func testDocument() domain.Document {
	tool := func(id, name string) map[string]any {
		return map[string]any{"id": id, "name": name, "description": name + " tool"}
	}
	return domain.Document{
		"app": map[string]any{
			"name_zh":     "测试",
			"name_en":     "Test",
			"description": "A test app",
		},
		"executables": map[string]any{
			"gui_name":        "test-gui",
			"mcp_server_name": "test-mcp",
		},
		"mcp_tools": map[string]any{
			"interaction": tool("zhi", "Interaction"),
			"memory":      tool("ji", "Memory"),
			"search":      tool("sou", "Search"),
		},
		"actions": map[string]any{
			"memory_add":    "remember",
			"memory_recall": "recall",
		},
	}
}

// mockGenerator is a mock implementation of driven.Generator.
type mockGenerator struct {
	mu    sync.Mutex
	name  string
	out   string
	err   error
	calls int
}

func (m *mockGenerator) Name() string { return m.name }

func (m *mockGenerator) Generate(_ context.Context, _ *domain.VocabularyFile) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.out, m.err
}

// mockManifestReader is a mock implementation of driven.ManifestReader.
type mockManifestReader struct {
	names []string
	err   error
	path  string
}

func (m *mockManifestReader) BinaryNames(_ context.Context, path string) ([]string, error) {
	m.path = path
	return m.names, m.err
}

// mockWatcher is a mock implementation of driven.Watcher that fires
// onChange a fixed number of times and returns.
type mockWatcher struct {
	fires  int
	before func(i int)
	path   string
	err    error
}

func (m *mockWatcher) Watch(_ context.Context, path string, onChange func()) error {
	m.path = path
	for i := 0; i < m.fires; i++ {
		if m.before != nil {
			m.before(i)
		}
		onChange()
	}
	return m.err
}

// flakyStore fails the given number of loads with a file access error
// before delegating.
type flakyStore struct {
	driven.VocabularyStore
	mu       sync.Mutex
	failures int
}

func (f *flakyStore) Load(ctx context.Context) (*domain.VocabularyFile, error) {
	f.mu.Lock()
	if f.failures > 0 {
		f.failures--
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: renamed away", domain.ErrFileAccess)
	}
	f.mu.Unlock()
	return f.VocabularyStore.Load(ctx)
}

func (f *flakyStore) fail(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = n
}
