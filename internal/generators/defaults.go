package generators

import (
	"github.com/custodia-labs/vocab/internal/core/domain"
	"github.com/custodia-labs/vocab/internal/core/ports/driven"
	"github.com/custodia-labs/vocab/internal/generators/esm"
	"github.com/custodia-labs/vocab/internal/generators/goconst"
)

// RegisterDefaults registers all built-in targets with the registry.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) {
	r.Register(domain.TargetESM, buildESM)
	r.Register(domain.TargetGo, buildGoConst)
}

// NewDefaultRegistry returns a registry with the built-in targets.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// buildESM creates the ES module generator.
// Supported option keys:
//   - indent (string): Pretty-print indentation (default: two spaces)
func buildESM(opts map[string]any) (driven.Generator, error) {
	var options []esm.Option
	if indent := getStringFromOptions(opts, "indent"); indent != "" {
		options = append(options, esm.WithIndent(indent))
	}
	return esm.New(options...), nil
}

// buildGoConst creates the Go constants generator.
// Supported option keys:
//   - package (string): Package clause of the generated file (default: vocabulary)
func buildGoConst(opts map[string]any) (driven.Generator, error) {
	var options []goconst.Option
	if pkg := getStringFromOptions(opts, "package"); pkg != "" {
		options = append(options, goconst.WithPackage(pkg))
	}
	return goconst.New(options...), nil
}

// getStringFromOptions safely extracts a string from a generic options map.
func getStringFromOptions(opts map[string]any, key string) string {
	if opts == nil {
		return ""
	}
	s, ok := opts[key].(string)
	if !ok {
		return ""
	}
	return s
}
