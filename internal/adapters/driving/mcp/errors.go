// Package mcp provides an MCP (Model Context Protocol) server adapter for vocab.
// It lets AI assistants read the project vocabulary and the generated
// virtual:vocabulary module.
package mcp

import "errors"

// ErrMissingModuleProvider is returned when the module provider is not provided.
var ErrMissingModuleProvider = errors.New("mcp: module provider is required")

// ErrMissingVocabularyService is returned by handlers that need the vocabulary service.
var ErrMissingVocabularyService = errors.New("mcp: vocabulary service is not configured")
