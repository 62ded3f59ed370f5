package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vocab/internal/adapters/driving/esbuild"
)

var (
	buildOutfile string
	buildFormat  string
	buildMinify  bool
)

var buildCmd = &cobra.Command{
	Use:   "build [entry]",
	Short: "Bundle an entry point with esbuild",
	Long: `Bundles a JavaScript entry point with esbuild, serving imports of
virtual:vocabulary from vocabulary.toml. Without --outfile the bundle is
printed to stdout. Relative entry and output paths are resolved against
--root.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutfile, "outfile", "o", "", "output file")
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", esbuild.FormatESM, "output format (esm, cjs, iife)")
	buildCmd.Flags().BoolVar(&buildMinify, "minify", false, "minify the output")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	if moduleProvider == nil {
		return errors.New("module provider not configured")
	}

	entry := projectPath(args[0])
	outfile := projectPath(buildOutfile)

	files, err := esbuild.Build(cmd.Context(), moduleProvider, esbuild.BuildOptions{
		EntryPoint: entry,
		Outfile:    outfile,
		Format:     buildFormat,
		Minify:     buildMinify,
	})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if outfile != "" {
		cmd.Printf("Bundled %s -> %s\n", entry, outfile)
		return nil
	}
	for _, f := range files {
		if _, err := cmd.OutOrStdout().Write(f.Contents); err != nil {
			return err
		}
	}
	return nil
}
