package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/glyphpick/internal/tui"
)

// NewPickCmd creates the 'pick' command, the interactive terminal picker.
func NewPickCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the interactive picker",
		Long: `Open a terminal picker: type to filter, arrow keys to navigate the
grid, enter to select. The chosen glyph is printed to stdout and its use is
recorded.`,
		Example: `  glyphpick pick
  glyphpick pick | pbcopy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(catalogPath)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog JSON file (overrides config)")

	return cmd
}

// runPick opens the TUI and prints the chosen glyph.
func runPick(catalogPath string) error {
	eng, store, err := loadEngine(catalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	item, picked, err := tui.Run(eng)
	if err != nil {
		return err
	}
	if picked {
		fmt.Println(item.ID)
	}
	return nil
}
