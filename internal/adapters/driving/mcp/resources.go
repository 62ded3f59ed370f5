package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/vocab/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for vocab resources.
	uriScheme = "vocabulary://"

	mimeJSON       = "application/json"
	mimeJavaScript = "text/javascript"
	mimePlain      = "text/plain"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "document",
		Name:        "document",
		Description: "The parsed vocabulary.toml as JSON",
		MIMEType:    mimeJSON,
	}, s.handleDocumentResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "module",
		Name:        "module",
		Description: "The generated source of " + domain.ReservedID,
		MIMEType:    mimeJavaScript,
	}, s.handleModuleResource)

	// Template for any registered generation target.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "generated/{target}",
		Name:        "generated",
		Description: "The vocabulary rendered for a generation target (" + domain.TargetNames() + ")",
		MIMEType:    mimePlain,
	}, s.handleGeneratedResource)
}

// handleDocumentResource returns the whole vocabulary document.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Vocabulary == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	file, err := s.ports.Vocabulary.Document(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file.Document); err != nil {
		return nil, fmt.Errorf("marshalling vocabulary: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: mimeJSON,
			Text:     buf.String(),
		}},
	}, nil
}

// handleModuleResource returns exactly what a host receives when loading
// the virtual module.
func (s *Server) handleModuleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	code, handled, err := s.ports.Provider.Load(ctx, domain.InternalID)
	if err != nil {
		return nil, err
	}
	if !handled {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: mimeJavaScript,
			Text:     code,
		}},
	}, nil
}

// handleGeneratedResource renders the vocabulary for the target in the URI.
func (s *Server) handleGeneratedResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Vocabulary == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract target from URI: vocabulary://generated/{target}
	target := extractTarget(req.Params.URI)
	if !target.IsValid() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	content, err := s.ports.Vocabulary.Generate(ctx, target, nil)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", target, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: mimeTypeFor(target),
			Text:     content,
		}},
	}, nil
}

// extractTarget extracts the target from a URI like vocabulary://generated/{target}.
func extractTarget(uri string) domain.Target {
	const prefix = uriScheme + "generated/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return domain.Target(strings.TrimPrefix(uri, prefix))
}

func mimeTypeFor(target domain.Target) string {
	switch target {
	case domain.TargetESM:
		return mimeJavaScript
	case domain.TargetGo:
		return "text/x-go"
	default:
		return mimePlain
	}
}
