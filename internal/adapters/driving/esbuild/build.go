package esbuild

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/custodia-labs/vocab/internal/core/ports/driving"
	"github.com/custodia-labs/vocab/internal/logger"
)

// ErrBuild is returned when esbuild reports errors.
var ErrBuild = errors.New("esbuild build failed")

// Output formats accepted by BuildOptions.Format.
const (
	FormatESM  = "esm"
	FormatCJS  = "cjs"
	FormatIIFE = "iife"
)

// BuildOptions configures a bundle.
type BuildOptions struct {
	// EntryPoint is the file to bundle. With Contents set it only names
	// the entry in diagnostics.
	EntryPoint string

	// Contents, when non-empty, is bundled instead of reading EntryPoint.
	Contents string

	// ResolveDir is where imports in Contents are resolved from.
	// Defaults to the entry point's directory.
	ResolveDir string

	// Outfile is the output path. Nothing is written when empty.
	Outfile string

	// Format is one of FormatESM, FormatCJS or FormatIIFE. Defaults to FormatESM.
	Format string

	Minify bool
}

// OutputFile is one file produced by a build.
type OutputFile struct {
	Path     string
	Contents []byte
}

// Build bundles an entry point with the vocabulary plugin installed.
func Build(ctx context.Context, provider driving.ModuleProvider, opts BuildOptions) ([]OutputFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := parseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	buildOpts := api.BuildOptions{
		Bundle:            true,
		Format:            format,
		Charset:           api.CharsetUTF8,
		MinifyWhitespace:  opts.Minify,
		MinifyIdentifiers: opts.Minify,
		MinifySyntax:      opts.Minify,
		LogLevel:          logLevel(),
		Plugins:           []api.Plugin{plugin(ctx, provider)},
	}

	if opts.Contents != "" {
		resolveDir := opts.ResolveDir
		if resolveDir == "" && opts.EntryPoint != "" {
			resolveDir = filepath.Dir(opts.EntryPoint)
		}
		buildOpts.Stdin = &api.StdinOptions{
			Contents:   opts.Contents,
			ResolveDir: resolveDir,
			Sourcefile: opts.EntryPoint,
			Loader:     api.LoaderJS,
		}
	} else {
		if opts.EntryPoint == "" {
			return nil, fmt.Errorf("%w: no entry point", ErrBuild)
		}
		buildOpts.EntryPoints = []string{opts.EntryPoint}
	}

	if opts.Outfile != "" {
		buildOpts.Outfile = opts.Outfile
		buildOpts.Write = true
	} else {
		// esbuild needs an output path to name in-memory results.
		buildOpts.Outfile = "out.js"
	}

	logger.Section("esbuild")
	logger.Debug("Entry: %s", opts.EntryPoint)
	logger.Debug("Format: %s, minify: %t", opts.Format, opts.Minify)

	bc, ctxErr := api.Context(buildOpts)
	if ctxErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrBuild, formatMessages(ctxErr.Errors))
	}
	defer bc.Dispose()

	stop := context.AfterFunc(ctx, bc.Cancel)
	defer stop()

	result := bc.Rebuild()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrBuild, formatMessages(result.Errors))
	}
	for _, w := range result.Warnings {
		logger.Warn("%s", w.Text)
	}

	files := make([]OutputFile, 0, len(result.OutputFiles))
	for _, f := range result.OutputFiles {
		files = append(files, OutputFile{Path: f.Path, Contents: f.Contents})
	}
	return files, nil
}

// logLevel lets esbuild print its own diagnostics in verbose mode.
func logLevel() api.LogLevel {
	if logger.IsVerbose() {
		return api.LogLevelWarning
	}
	return api.LogLevelSilent
}

func parseFormat(name string) (api.Format, error) {
	switch name {
	case "", FormatESM:
		return api.FormatESModule, nil
	case FormatCJS:
		return api.FormatCommonJS, nil
	case FormatIIFE:
		return api.FormatIIFE, nil
	default:
		return api.FormatDefault, fmt.Errorf("%w: unknown format %q", ErrBuild, name)
	}
}

func formatMessages(msgs []api.Message) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		text := m.Text
		if m.Location != nil && m.Location.File != "" {
			text = fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, text)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "; ")
}
