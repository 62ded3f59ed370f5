package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vocab/internal/core/domain"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [id]",
	Short: "Resolve a module id",
	Long: `Runs the resolve hook a host build tool would call for an import.
Prints the internal id (Go-quoted, since it starts with a NUL byte) when the
id is served by the vocabulary provider, and fails otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if moduleProvider == nil {
		return errors.New("module provider not configured")
	}

	resolved, handled := moduleProvider.Resolve(args[0])
	if !handled {
		return fmt.Errorf("%w: %q", domain.ErrNotHandled, args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), strconv.Quote(resolved))
	return nil
}
