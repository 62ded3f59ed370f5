package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vocab/internal/core/domain"
)

var loadCmd = &cobra.Command{
	Use:   "load [id]",
	Short: "Print the generated virtual module",
	Long: `Runs the load hook for a module id and prints the module text.
Without an id the internal id is loaded. The public id virtual:vocabulary
is resolved first, the way a host would.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	if moduleProvider == nil {
		return errors.New("module provider not configured")
	}

	id := domain.InternalID
	if len(args) == 1 {
		id = args[0]
		if resolved, ok := moduleProvider.Resolve(id); ok {
			id = resolved
		}
	}

	code, handled, err := moduleProvider.Load(cmd.Context(), id)
	if err != nil {
		return err
	}
	if !handled {
		return fmt.Errorf("%w: %q", domain.ErrNotHandled, id)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), code)
	return err
}
