package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDocument() Document {
	tool := func(id, name string) map[string]any {
		return map[string]any{"id": id, "name": name, "description": name + " tool"}
	}
	return Document{
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

func TestDocument_Lookup(t *testing.T) {
	doc := fullDocument()

	tests := []struct {
		name     string
		path     string
		expected any
	}{
		{"top-level table", "actions", doc["actions"]},
		{"nested string", "app.name_zh", "测试"},
		{"nested table", "mcp_tools.memory", doc["mcp_tools"].(map[string]any)["memory"]},
		{"deep string", "mcp_tools.search.id", "sou"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := doc.Lookup(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestDocument_Lookup_Missing(t *testing.T) {
	doc := fullDocument()

	_, err := doc.Lookup("app.missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFieldAccess))
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "app.missing", fieldErr.Path)
}

func TestDocument_Lookup_ThroughScalar(t *testing.T) {
	doc := fullDocument()

	_, err := doc.Lookup("app.name_zh.extra")

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "app.name_zh", fieldErr.Path)
	assert.Equal(t, "is not a table", fieldErr.Reason)
}

func TestDocument_String(t *testing.T) {
	doc := fullDocument()
	doc["app"].(map[string]any)["version"] = int64(3)

	s, err := doc.String("app.name_en")
	require.NoError(t, err)
	assert.Equal(t, "Test", s)

	_, err = doc.String("app.version")
	assert.True(t, errors.Is(err, ErrFieldAccess))
	assert.Contains(t, err.Error(), "is not a string")
}

func TestNewVocabulary(t *testing.T) {
	v, err := NewVocabulary(fullDocument())

	require.NoError(t, err)
	assert.Equal(t, "测试", v.App.NameZh)
	assert.Equal(t, "Test", v.App.NameEn)
	assert.Equal(t, "test-gui", v.Executables.GUIName)
	assert.Equal(t, "test-mcp", v.Executables.MCPServerName)
	assert.Equal(t, ToolConfig{ID: "zhi", Name: "Interaction", Description: "Interaction tool"}, v.MCPTools.Interaction)
	assert.Equal(t, "ji", v.MCPTools.Memory.ID)
	assert.Equal(t, "sou", v.MCPTools.Search.ID)
	assert.Equal(t, "remember", v.Actions.MemoryAdd)
	assert.Equal(t, "recall", v.Actions.MemoryRecall)
}

func TestNewVocabulary_MissingSection(t *testing.T) {
	doc := fullDocument()
	delete(doc, "actions")

	v, err := NewVocabulary(doc)

	assert.Nil(t, v)
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "actions.memory_add", fieldErr.Path)
}

func TestNewVocabulary_ScalarTool(t *testing.T) {
	doc := fullDocument()
	doc["mcp_tools"].(map[string]any)["search"] = "sou"

	v, err := NewVocabulary(doc)

	require.NoError(t, err)
	assert.Equal(t, ToolConfig{}, v.MCPTools.Search)
}

func TestValidateBindings_ReportsFirstMissingInOrder(t *testing.T) {
	doc := fullDocument()
	delete(doc["executables"].(map[string]any), "mcp_server_name")
	delete(doc, "actions")

	err := ValidateBindings(doc)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "executables.mcp_server_name", fieldErr.Path)
}
