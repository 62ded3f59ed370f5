// Package esm renders the vocabulary as the ES module behind virtual:vocabulary.
package esm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/custodia-labs/vocab/internal/core/domain"
)

// DefaultIndent is the indentation used when pretty-printing the document.
const DefaultIndent = "  "

// Generator renders a vocabulary file as ES module source.
// It implements the driven.Generator interface.
type Generator struct {
	indent string
}

// Option configures the generator.
type Option func(*Generator)

// WithIndent sets the pretty-print indentation. Empty values are ignored
// so the output is never minified.
func WithIndent(indent string) Option {
	return func(g *Generator) {
		if indent != "" {
			g.indent = indent
		}
	}
}

// New creates a new ES module generator with the given options.
func New(opts ...Option) *Generator {
	g := &Generator{indent: DefaultIndent}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the target name.
func (g *Generator) Name() string {
	return string(domain.TargetESM)
}

// Generate renders the module text. Every convenience binding must resolve;
// a missing field fails with a *domain.FieldError and no text is produced.
func (g *Generator) Generate(ctx context.Context, file *domain.VocabularyFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if file == nil || file.Document == nil {
		return "", fmt.Errorf("%w: no document loaded", domain.ErrParse)
	}

	if err := checkFinite(map[string]any(file.Document), ""); err != nil {
		return "", err
	}

	whole, err := g.literal(file.Document)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("// This file is generated by vocab from " + domain.VocabularyFileName + ". DO NOT EDIT.\n")
	sb.WriteString("// Source: " + domain.VocabularyFileName + "\n")
	sb.WriteString("// Edit " + domain.VocabularyFileName + " instead; manual changes are overwritten on the next build.\n")
	sb.WriteString("\n")
	sb.WriteString("export const vocabulary = " + whole + ";\n")
	sb.WriteString("\n")
	sb.WriteString("export default vocabulary;\n")
	sb.WriteString("\n")
	sb.WriteString("// Convenience bindings\n")

	for _, b := range domain.ConvenienceBindings {
		value, err := file.Document.Lookup(b.Path)
		if err != nil {
			return "", fmt.Errorf("binding %s: %w", b.Export, err)
		}
		lit, err := g.literal(value)
		if err != nil {
			return "", fmt.Errorf("binding %s: %w", b.Export, err)
		}
		sb.WriteString("export const " + b.Export + " = " + lit + ";\n")
	}

	return sb.String(), nil
}

// literal encodes v as an indented JSON literal. HTML escaping is off so
// text like "<" survives verbatim; U+2028 and U+2029 are still escaped,
// which keeps the literal valid inside JavaScript source.
func (g *Generator) literal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", g.indent)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrParse, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// checkFinite rejects NaN and infinities, which have no JSON literal.
func checkFinite(v any, path string) error {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("%w: value at %q is not a finite number", domain.ErrParse, path)
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := checkFinite(t[k], join(path, k)); err != nil {
				return err
			}
		}
	case []any:
		for i, item := range t {
			if err := checkFinite(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
