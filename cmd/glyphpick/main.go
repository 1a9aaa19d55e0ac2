/*
Package main is the entry point for the glyphpick CLI.

glyphpick is the ranking and navigation engine of a desktop glyph
quick-picker: it scores a fixed glyph catalog against free-text queries,
maintains a decaying usage-frequency model to surface recently relevant
glyphs, and lays the sectioned result list onto a fixed-width grid for
keyboard navigation.

Usage:
  glyphpick [command]

Available Commands:
  pick        Open the interactive picker
  search      Search the glyph catalog by relevance
  top         List the most frequently used glyphs
  record      Record a use of a glyph
  clear       Wipe all recorded usage
  categories  List catalog categories
  export      Export the usage snapshot
  import      Import a usage snapshot
  help        Help about any command

Examples:
  # Interactive picker, chosen glyph on stdout
  glyphpick pick

  # Ranked search from a script
  glyphpick search smile --json
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khanglvm/glyphpick/internal/cli"
	"github.com/khanglvm/glyphpick/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glyphpick",
		Short: "Glyph quick-picker: relevance search, frecency, grid navigation",
		Long: `glyphpick ranks a fixed glyph catalog against free-text queries, learns
which glyphs you actually use through a decaying usage score, and arranges
the sectioned result list onto a fixed-width grid for keyboard navigation.

Configuration lives in ~/.glyphpick.json; usage history persists in
~/.glyphpick/usage.db.`,
		Version: version.GetVersion(),
	}

	rootCmd.AddCommand(cli.NewPickCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewTopCmd())
	rootCmd.AddCommand(cli.NewRecordCmd())
	rootCmd.AddCommand(cli.NewClearCmd())
	rootCmd.AddCommand(cli.NewCategoriesCmd())
	rootCmd.AddCommand(cli.NewExportCmd())
	rootCmd.AddCommand(cli.NewImportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
