package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/vocab/internal/core/domain"
)

// ResolveInput is the input schema for the resolve_module tool.
type ResolveInput struct {
	ID string `json:"id" jsonschema:"the module id as written in an import statement"`
}

// ResolveOutput is the output schema for the resolve_module tool.
type ResolveOutput struct {
	Handled    bool   `json:"handled"`
	ResolvedID string `json:"resolved_id,omitempty"`
}

// GenerateInput is the input schema for the generate tool.
type GenerateInput struct {
	Target  string `json:"target,omitempty" jsonschema:"generation target: esm or go (default esm)"`
	Package string `json:"package,omitempty" jsonschema:"Go package name for the go target"`
}

// GenerateOutput is the output schema for the generate tool.
type GenerateOutput struct {
	Target  string `json:"target"`
	Content string `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_module",
		Description: "Report whether a module id is served by the vocabulary provider",
	}, s.handleResolve)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate",
		Description: "Render vocabulary.toml for a generation target",
	}, s.handleGenerate)
}

// handleResolve handles the resolve_module tool invocation.
func (s *Server) handleResolve(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	resolved, handled := s.ports.Provider.Resolve(input.ID)
	return nil, ResolveOutput{Handled: handled, ResolvedID: resolved}, nil
}

// handleGenerate handles the generate tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	if s.ports.Vocabulary == nil {
		return nil, GenerateOutput{}, ErrMissingVocabularyService
	}

	target := domain.Target(input.Target)
	if target == "" {
		target = domain.TargetESM
	}
	if !target.IsValid() {
		return nil, GenerateOutput{}, fmt.Errorf("%w: %q", domain.ErrUnknownTarget, input.Target)
	}

	var opts map[string]any
	if input.Package != "" {
		opts = map[string]any{"package": input.Package}
	}

	content, err := s.ports.Vocabulary.Generate(ctx, target, opts)
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	return nil, GenerateOutput{Target: string(target), Content: content}, nil
}
