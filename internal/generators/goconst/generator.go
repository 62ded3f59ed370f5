// Package goconst renders the vocabulary as a Go source file of string constants.
package goconst

import (
	"context"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"

	"github.com/custodia-labs/vocab/internal/core/domain"
)

// DefaultPackage is the package clause used when none is configured.
const DefaultPackage = "vocabulary"

// constant is one generated declaration.
type constant struct {
	name string
	path string
	doc  string
}

// group is a commented block of related constants.
type group struct {
	title     string
	constants []constant
}

var groups = []group{
	{
		title: "Application names",
		constants: []constant{
			{"AppNameZh", "app.name_zh", "AppNameZh is the application name (Chinese)."},
			{"AppNameEn", "app.name_en", "AppNameEn is the application name (English)."},
			{"AppDescription", "app.description", "AppDescription is the application description."},
		},
	},
	{
		title: "Executable names",
		constants: []constant{
			{"ExecutableGUI", "executables.gui_name", "ExecutableGUI is the GUI executable name."},
			{"ExecutableMCPServer", "executables.mcp_server_name", "ExecutableMCPServer is the MCP server executable name."},
		},
	},
	toolGroup("Interaction", "interaction"),
	toolGroup("Memory", "memory"),
	toolGroup("Search", "search"),
	{
		title: "Action verbs",
		constants: []constant{
			{"ActionMemoryAdd", "actions.memory_add", "ActionMemoryAdd is the verb for adding a memory."},
			{"ActionMemoryRecall", "actions.memory_recall", "ActionMemoryRecall is the verb for recalling memories."},
		},
	},
}

func toolGroup(title, key string) group {
	base := "mcp_tools." + key
	lower := strings.ToLower(title)
	return group{
		title: "MCP tool: " + lower,
		constants: []constant{
			{"ToolID" + title, base + ".id", "ToolID" + title + " is the MCP protocol id of the " + lower + " tool."},
			{"ToolName" + title, base + ".name", "ToolName" + title + " is the display name of the " + lower + " tool."},
			{"ToolDesc" + title, base + ".description", "ToolDesc" + title + " describes the " + lower + " tool."},
		},
	}
}

// aliases keep older constant names compiling.
var aliases = [][2]string{
	{"Name", "AppNameZh"},
	{"NameEn", "AppNameEn"},
	{"ToolZhi", "ToolIDInteraction"},
	{"ToolJi", "ToolIDMemory"},
	{"ToolSou", "ToolIDSearch"},
}

// Generator renders Go constants.
// It implements the driven.Generator interface.
type Generator struct {
	pkg string
}

// Option configures the generator.
type Option func(*Generator)

// WithPackage sets the package name of the generated file.
// Names that are not valid Go identifiers are ignored.
func WithPackage(name string) Option {
	return func(g *Generator) {
		if token.IsIdentifier(name) && !token.IsKeyword(name) {
			g.pkg = name
		}
	}
}

// New creates a new Go constants generator with the given options.
func New(opts ...Option) *Generator {
	g := &Generator{pkg: DefaultPackage}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the target name.
func (g *Generator) Name() string {
	return string(domain.TargetGo)
}

// Generate renders a gofmt-formatted source file. Every referenced field
// must be a string.
func (g *Generator) Generate(ctx context.Context, file *domain.VocabularyFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if file == nil || file.Document == nil {
		return "", fmt.Errorf("%w: no document loaded", domain.ErrParse)
	}

	var sb strings.Builder
	sb.WriteString("// Code generated by vocab from " + domain.VocabularyFileName + ". DO NOT EDIT.\n\n")
	sb.WriteString("package " + g.pkg + "\n\n")

	for _, grp := range groups {
		sb.WriteString("// " + grp.title + ".\n")
		sb.WriteString("const (\n")
		for i, c := range grp.constants {
			value, err := file.Document.String(c.path)
			if err != nil {
				return "", fmt.Errorf("constant %s: %w", c.name, err)
			}
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("// " + c.doc + "\n")
			sb.WriteString(c.name + " = " + strconv.Quote(value) + "\n")
		}
		sb.WriteString(")\n\n")
	}

	sb.WriteString("// Aliases kept for older callers.\n")
	sb.WriteString("const (\n")
	for _, a := range aliases {
		sb.WriteString(a[0] + " = " + a[1] + "\n")
	}
	sb.WriteString(")\n")

	formatted, err := format.Source([]byte(sb.String()))
	if err != nil {
		return "", fmt.Errorf("format generated source: %w", err)
	}
	return string(formatted), nil
}
