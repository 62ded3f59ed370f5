package domain

import "strings"

// Document is the parsed vocabulary file: section name to key/value table.
// Values are strings, int64, float64, bool, TOML date/times, arrays or
// nested tables (map[string]any), as produced by the TOML decoder.
type Document map[string]any

// Lookup returns the value at a dotted field path.
// A missing key, or a non-table on the way down, yields a *FieldError.
func (d Document) Lookup(path string) (any, error) {
	parts := strings.Split(path, ".")

	var current any = map[string]any(d)
	for i, part := range parts {
		table, ok := asTable(current)
		if !ok {
			return nil, &FieldError{
				Path:   strings.Join(parts[:i], "."),
				Reason: "is not a table",
			}
		}

		value, ok := table[part]
		if !ok {
			return nil, &FieldError{Path: path}
		}
		current = value
	}

	return current, nil
}

// String returns the string at a dotted field path.
func (d Document) String(path string) (string, error) {
	value, err := d.Lookup(path)
	if err != nil {
		return "", err
	}

	s, ok := value.(string)
	if !ok {
		return "", &FieldError{Path: path, Reason: "is not a string"}
	}
	return s, nil
}

func asTable(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Document:
		return t, true
	default:
		return nil, false
	}
}

// ToolConfig describes one MCP tool.
type ToolConfig struct {
	ID          string `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`
}

// AppVocabulary holds the application names.
type AppVocabulary struct {
	NameZh      string `json:"name_zh" toml:"name_zh"`
	NameEn      string `json:"name_en" toml:"name_en"`
	Description string `json:"description" toml:"description"`
}

// ExecutableVocabulary holds the executable names.
type ExecutableVocabulary struct {
	GUIName       string `json:"gui_name" toml:"gui_name"`
	MCPServerName string `json:"mcp_server_name" toml:"mcp_server_name"`
}

// MCPToolsVocabulary holds the MCP tool descriptions.
type MCPToolsVocabulary struct {
	Interaction ToolConfig `json:"interaction" toml:"interaction"`
	Memory      ToolConfig `json:"memory" toml:"memory"`
	Search      ToolConfig `json:"search" toml:"search"`
}

// ActionsVocabulary holds the action verbs.
type ActionsVocabulary struct {
	MemoryAdd    string `json:"memory_add" toml:"memory_add"`
	MemoryRecall string `json:"memory_recall" toml:"memory_recall"`
}

// Vocabulary is the typed view of a Document.
type Vocabulary struct {
	App         AppVocabulary        `json:"app" toml:"app"`
	Executables ExecutableVocabulary `json:"executables" toml:"executables"`
	MCPTools    MCPToolsVocabulary   `json:"mcp_tools" toml:"mcp_tools"`
	Actions     ActionsVocabulary    `json:"actions" toml:"actions"`
}

// NewVocabulary validates doc and builds its typed view.
// Every convenience binding path is required; the first missing one,
// in binding order, is returned as a *FieldError.
// String fields holding a non-string value are left empty.
func NewVocabulary(doc Document) (*Vocabulary, error) {
	if err := ValidateBindings(doc); err != nil {
		return nil, err
	}

	str := func(path string) string {
		s, _ := doc.String(path) //nolint:errcheck // presence checked above
		return s
	}
	tool := func(path string) ToolConfig {
		return ToolConfig{
			ID:          str(path + ".id"),
			Name:        str(path + ".name"),
			Description: str(path + ".description"),
		}
	}

	return &Vocabulary{
		App: AppVocabulary{
			NameZh:      str("app.name_zh"),
			NameEn:      str("app.name_en"),
			Description: str("app.description"),
		},
		Executables: ExecutableVocabulary{
			GUIName:       str("executables.gui_name"),
			MCPServerName: str("executables.mcp_server_name"),
		},
		MCPTools: MCPToolsVocabulary{
			Interaction: tool("mcp_tools.interaction"),
			Memory:      tool("mcp_tools.memory"),
			Search:      tool("mcp_tools.search"),
		},
		Actions: ActionsVocabulary{
			MemoryAdd:    str("actions.memory_add"),
			MemoryRecall: str("actions.memory_recall"),
		},
	}, nil
}

// ValidateBindings checks that every convenience binding path exists in doc.
func ValidateBindings(doc Document) error {
	for _, b := range ConvenienceBindings {
		if _, err := doc.Lookup(b.Path); err != nil {
			return err
		}
	}
	return nil
}

// VocabularyFile is the result of loading the vocabulary file once.
type VocabularyFile struct {
	// Path is the absolute path the document was read from.
	Path string

	// Document is the full parsed file.
	Document Document

	// Vocabulary is the validated typed view.
	Vocabulary *Vocabulary
}
