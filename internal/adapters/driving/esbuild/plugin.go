// Package esbuild binds the vocabulary provider to esbuild's plugin API,
// so bundles can import virtual:vocabulary.
package esbuild

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/custodia-labs/vocab/internal/core/domain"
	"github.com/custodia-labs/vocab/internal/core/ports/driving"
	"github.com/custodia-labs/vocab/internal/logger"
)

const (
	// PluginName is the name esbuild reports for this plugin.
	PluginName = "vocabulary-plugin"

	// Namespace keeps the virtual module away from esbuild's file loader.
	Namespace = "vocabulary"
)

// resolveFilter matches the reserved id and nothing else.
var resolveFilter = "^" + regexp.QuoteMeta(domain.ReservedID) + "$"

// Plugin returns an esbuild plugin serving virtual:vocabulary from provider.
func Plugin(provider driving.ModuleProvider) api.Plugin {
	return plugin(context.Background(), provider)
}

func plugin(ctx context.Context, provider driving.ModuleProvider) api.Plugin {
	return api.Plugin{
		Name: PluginName,
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: resolveFilter},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					resolved, handled := provider.Resolve(args.Path)
					if !handled {
						return api.OnResolveResult{}, nil
					}
					logger.Debug("Resolved %s from %s", args.Path, args.Importer)

					// esbuild paths cannot carry the NUL sentinel, so the
					// internal id travels as plugin data.
					return api.OnResolveResult{
						Path:       domain.ReservedID,
						Namespace:  Namespace,
						PluginData: resolved,
					}, nil
				})

			build.OnLoad(api.OnLoadOptions{Filter: ".*", Namespace: Namespace},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					id, ok := args.PluginData.(string)
					if !ok {
						id = args.Path
					}

					code, handled, err := provider.Load(ctx, id)
					if err != nil {
						return api.OnLoadResult{}, err
					}
					if !handled {
						return api.OnLoadResult{}, fmt.Errorf("%w: %q", domain.ErrNotHandled, id)
					}

					source := provider.SourcePath()
					return api.OnLoadResult{
						Contents:   &code,
						Loader:     api.LoaderJS,
						ResolveDir: filepath.Dir(source),
						WatchFiles: []string{source},
					}, nil
				})
		},
	}
}
