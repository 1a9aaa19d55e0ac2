package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/khanglvm/glyphpick/internal/learning"
)

// NewRecordCmd creates the 'record' command for recording a glyph use.
func NewRecordCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:     "record <glyph>",
		Short:   "Record a use of a glyph",
		Long:    `Apply decay to all usage scores, boost the given glyph, and persist the result. Useful for scripting and host integrations.`,
		Example: `  glyphpick record 😀`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(args[0], catalogPath)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog JSON file (overrides config)")

	return cmd
}

// runRecord records one use of a glyph.
func runRecord(glyph, catalogPath string) error {
	eng, store, err := loadEngine(catalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := eng.RecordUse(glyph, time.Now()); err != nil {
		var unknown *learning.UnknownItemError
		if errors.As(err, &unknown) {
			return fmt.Errorf("%q is not in the catalog", glyph)
		}
		return err
	}

	fmt.Printf("Recorded use of %s (score %.4f)\n", glyph, eng.UsageScore(glyph))
	return nil
}
