package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vocab/internal/core/domain"
)

func TestExtractTarget(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected domain.Target
	}{
		{
			name:     "esm target",
			uri:      "vocabulary://generated/esm",
			expected: domain.TargetESM,
		},
		{
			name:     "go target",
			uri:      "vocabulary://generated/go",
			expected: domain.TargetGo,
		},
		{
			name:     "invalid prefix",
			uri:      "file://generated/esm",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractTarget(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDocumentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns document as JSON", func(t *testing.T) {
		vocab := &mockVocabularyService{
			file: &domain.VocabularyFile{
				Document: domain.Document{
					"app": map[string]any{"name_zh": "测试", "description": "a < b"},
				},
			},
		}
		server, err := NewServer(&Ports{Provider: &mockModuleProvider{}, Vocabulary: vocab})
		require.NoError(t, err)

		result, err := server.handleDocumentResource(ctx, makeReadResourceRequest("vocabulary://document"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "a < b")

		var decoded map[string]map[string]string
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &decoded))
		assert.Equal(t, "测试", decoded["app"]["name_zh"])
	})

	t.Run("load error", func(t *testing.T) {
		vocab := &mockVocabularyService{err: domain.ErrFileAccess}
		server, err := NewServer(&Ports{Provider: &mockModuleProvider{}, Vocabulary: vocab})
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest("vocabulary://document"))

		assert.ErrorIs(t, err, domain.ErrFileAccess)
	})

	t.Run("nil vocabulary service returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Provider: &mockModuleProvider{}})
		require.NoError(t, err)

		_, err = server.handleDocumentResource(ctx, makeReadResourceRequest("vocabulary://document"))

		assert.Error(t, err)
	})
}

func TestServer_handleModuleResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns generated module", func(t *testing.T) {
		provider := &mockModuleProvider{code: "export const appName = \"x\";\n"}
		server, err := NewServer(&Ports{Provider: provider})
		require.NoError(t, err)

		result, err := server.handleModuleResource(ctx, makeReadResourceRequest("vocabulary://module"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/javascript", result.Contents[0].MIMEType)
		assert.Equal(t, provider.code, result.Contents[0].Text)
		assert.Equal(t, []string{domain.InternalID}, provider.loadIDs)
	})

	t.Run("load error", func(t *testing.T) {
		provider := &mockModuleProvider{err: domain.ErrParse}
		server, err := NewServer(&Ports{Provider: provider})
		require.NoError(t, err)

		_, err = server.handleModuleResource(ctx, makeReadResourceRequest("vocabulary://module"))

		assert.ErrorIs(t, err, domain.ErrParse)
	})
}

func TestServer_handleGeneratedResource(t *testing.T) {
	ctx := context.Background()

	t.Run("go target", func(t *testing.T) {
		vocab := &mockVocabularyService{content: "package vocabulary\n"}
		server, err := NewServer(&Ports{Provider: &mockModuleProvider{}, Vocabulary: vocab})
		require.NoError(t, err)

		result, err := server.handleGeneratedResource(ctx, makeReadResourceRequest("vocabulary://generated/go"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/x-go", result.Contents[0].MIMEType)
		assert.Equal(t, "package vocabulary\n", result.Contents[0].Text)
		assert.Equal(t, domain.TargetGo, vocab.lastTarget)
	})

	t.Run("unknown target returns not found", func(t *testing.T) {
		vocab := &mockVocabularyService{}
		server, err := NewServer(&Ports{Provider: &mockModuleProvider{}, Vocabulary: vocab})
		require.NoError(t, err)

		_, err = server.handleGeneratedResource(ctx, makeReadResourceRequest("vocabulary://generated/rust"))

		assert.Error(t, err)
		assert.Empty(t, vocab.lastTarget)
	})
}

func TestServer_GeneratedTemplateListsTargets(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(&Ports{Provider: &mockModuleProvider{}, Vocabulary: &mockVocabularyService{}})
	require.NoError(t, err)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close() //nolint:errcheck // test cleanup

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "v0.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close() //nolint:errcheck // test cleanup

	result, err := session.ListResourceTemplates(ctx, nil)

	require.NoError(t, err)
	require.Len(t, result.ResourceTemplates, 1)
	assert.Equal(t, "vocabulary://generated/{target}", result.ResourceTemplates[0].URITemplate)
	assert.Contains(t, result.ResourceTemplates[0].Description, "(esm, go)")
}
