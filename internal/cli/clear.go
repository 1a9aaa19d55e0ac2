package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewClearCmd creates the 'clear' command for wiping usage state.
func NewClearCmd() *cobra.Command {
	var catalogPath string
	var yes bool

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   "Wipe all recorded usage",
		Long:    `Delete every usage record, in memory and in the persisted store.`,
		Example: `  glyphpick clear --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Println("This deletes all usage history. Re-run with --yes to confirm.")
				return nil
			}
			return runClear(catalogPath)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog JSON file (overrides config)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")

	return cmd
}

// runClear wipes usage state and persists the empty snapshot.
func runClear(catalogPath string) error {
	eng, store, err := loadEngine(catalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	eng.ClearUsage()
	fmt.Println("Usage history cleared.")
	return nil
}
