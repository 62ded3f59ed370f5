package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/vocab/internal/core/ports/driving"
)

var (
	checkManifest string
	checkStrict   bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate vocabulary.toml",
	Long: `Validates vocabulary.toml and compares its executable names with the
[[bin]] targets of the Cargo manifest. Mismatches are reported as warnings;
use --strict to fail on them.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkManifest, "manifest", "Cargo.toml", "Cargo manifest, relative to the project root")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "treat warnings as errors")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	if vocabularyService == nil {
		return errors.New("vocabulary service not configured")
	}

	report, err := vocabularyService.Check(cmd.Context(), projectPath(checkManifest))
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	cmd.Print(renderCheckReport(cmd, report))

	if len(report.Warnings) > 0 && checkStrict {
		return fmt.Errorf("%d warning(s)", len(report.Warnings))
	}
	return nil
}

// renderCheckReport styles the report for the command's output. Colours are
// dropped automatically when the output is not a terminal.
func renderCheckReport(cmd *cobra.Command, report *driving.CheckReport) string {
	r := lipgloss.NewRenderer(cmd.OutOrStdout())

	labelStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	hintStyle := r.NewStyle().
		Foreground(lipgloss.Color("242")).
		Italic(true)

	okStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42"))

	warnStyle := r.NewStyle().
		Foreground(lipgloss.Color("220"))

	var sb strings.Builder
	sb.WriteString(labelStyle.Render("Vocabulary:"))
	sb.WriteString(" " + report.Path + "\n")

	sb.WriteString(labelStyle.Render("Manifest:  "))
	switch {
	case report.ManifestPath == "":
		sb.WriteString(" " + hintStyle.Render("skipped") + "\n")
	case !report.ManifestFound:
		sb.WriteString(" " + report.ManifestPath + " " + hintStyle.Render("(not found, skipped)") + "\n")
	default:
		sb.WriteString(" " + report.ManifestPath + "\n")
	}

	if len(report.Warnings) == 0 {
		sb.WriteString(okStyle.Render("OK") + "\n")
		return sb.String()
	}

	sb.WriteString("\n")
	for _, w := range report.Warnings {
		sb.WriteString(warnStyle.Render("  warning: "+w) + "\n")
	}
	return sb.String()
}
