package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vocab/internal/core/domain"
)

var (
	generateTarget  string
	generatePackage string
	generateOut     string
	generateWatch   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate code from vocabulary.toml",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Long = generateLong()
	generateCmd.Flags().StringVarP(&generateTarget, "target", "t", string(domain.TargetESM),
		"generation target ("+domain.TargetNames()+")")
	generateCmd.Flags().StringVar(&generatePackage, "package", "", "Go package name for the go target")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "write output to a file instead of stdout (relative to --root)")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "regenerate when vocabulary.toml changes")
	rootCmd.AddCommand(generateCmd)
}

func generateLong() string {
	var sb strings.Builder
	sb.WriteString("Renders vocabulary.toml for a generation target.\n\nTargets:\n")
	for _, target := range domain.AllTargets() {
		fmt.Fprintf(&sb, "  %-4s %s\n", target, target.Description())
	}
	sb.WriteString("\nWith --watch the output is regenerated every time vocabulary.toml changes.")
	return sb.String()
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if vocabularyService == nil {
		return errors.New("vocabulary service not configured")
	}

	target := domain.Target(generateTarget)
	if !target.IsValid() {
		return fmt.Errorf("%w: %q (available: %s)", domain.ErrUnknownTarget, generateTarget, domain.TargetNames())
	}

	opts := map[string]any{}
	if generatePackage != "" {
		opts["package"] = generatePackage
	}

	if generateWatch {
		return watchGenerate(cmd, target, opts)
	}

	out, err := vocabularyService.Generate(cmd.Context(), target, opts)
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}
	return emit(cmd, out)
}

func watchGenerate(cmd *cobra.Command, target domain.Target, opts map[string]any) error {
	ctx := cmd.Context()

	cmd.PrintErrln("Watching for changes. Press Ctrl+C to stop.")
	err := vocabularyService.Watch(ctx, target, opts, func(out string, err error) {
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			return
		}
		if err := emit(cmd, out); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// emit writes generated output to --out, or to stdout.
func emit(cmd *cobra.Command, out string) error {
	if generateOut == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	path := projectPath(generateOut)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil { //nolint:gosec // generated source is meant to be world-readable
		return fmt.Errorf("writing %s: %w", path, err)
	}

	cmd.PrintErrf("Wrote %s\n", path)
	return nil
}
