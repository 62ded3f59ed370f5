package domain

import "strings"

// Module identifiers and file names shared by the provider and its hosts.
const (
	// ReservedID is the only module id a consumer imports to get the vocabulary.
	ReservedID = "virtual:vocabulary"

	// InternalID is ReservedID behind a NUL sentinel so hosts never try
	// to resolve it on disk.
	InternalID = "\x00" + ReservedID

	// VocabularyFileName is the vocabulary file, relative to the project root.
	VocabularyFileName = "vocabulary.toml"
)

// Binding is one convenience export mirroring a nested field of the document.
type Binding struct {
	// Export is the exported binding name.
	Export string

	// Path is the dotted field path inside the document.
	Path string
}

// ConvenienceBindings lists the convenience exports in emission order.
var ConvenienceBindings = []Binding{
	{Export: "appName", Path: "app.name_zh"},
	{Export: "appNameEn", Path: "app.name_en"},
	{Export: "appDescription", Path: "app.description"},
	{Export: "guiName", Path: "executables.gui_name"},
	{Export: "mcpServerName", Path: "executables.mcp_server_name"},
	{Export: "toolInteraction", Path: "mcp_tools.interaction"},
	{Export: "toolMemory", Path: "mcp_tools.memory"},
	{Export: "toolSearch", Path: "mcp_tools.search"},
	{Export: "memoryAddAction", Path: "actions.memory_add"},
	{Export: "memoryRecallAction", Path: "actions.memory_recall"},
}

// Target names a code generation output format.
type Target string

// Built-in generation targets.
const (
	// TargetESM renders the virtual module as ES module source.
	TargetESM Target = "esm"

	// TargetGo renders a Go source file of string constants.
	TargetGo Target = "go"
)

// IsValid returns true if the target is one of the built-in targets.
func (t Target) IsValid() bool {
	switch t {
	case TargetESM, TargetGo:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Target) String() string {
	return string(t)
}

// Description returns a human-readable description of the target.
func (t Target) Description() string {
	switch t {
	case TargetESM:
		return "ES module (virtual:vocabulary)"
	case TargetGo:
		return "Go constants"
	default:
		return "Unknown"
	}
}

// AllTargets returns all built-in targets in display order.
func AllTargets() []Target {
	return []Target{TargetESM, TargetGo}
}

// TargetNames returns the built-in target names joined for display.
func TargetNames() string {
	targets := AllTargets()
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
