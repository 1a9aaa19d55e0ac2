package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanglvm/glyphpick/internal/storage"
)

// NewSearchCmd creates the 'search' command for ranked glyph lookup.
func NewSearchCmd() *cobra.Command {
	var catalogPath string
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "search <query>",
		Aliases: []string{"s"},
		Short:   "Search the glyph catalog by relevance",
		Long:    `Rank catalog glyphs against a free-text query. Every query word must match; results order by relevance score.`,
		Example: `  glyphpick search smile
  glyphpick search "thumbs up" --limit 5
  glyphpick search cat --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(strings.Join(args, " "), catalogPath, limit, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog JSON file (overrides config)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of results")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runSearch ranks the catalog against the query and prints the results.
func runSearch(query, catalogPath string, limit int, jsonOutput bool) error {
	eng, store, err := loadEngine(catalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	results := eng.SearchResults(query)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	// Search analytics are best-effort; failures only warn.
	store.RecordSearch(storage.NewSearchRecord(query, len(results)))

	if jsonOutput {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		fmt.Printf("No glyphs match %q.\n", query)
		return nil
	}

	fmt.Printf("Results for %q (%d):\n\n", query, len(results))
	for _, r := range results {
		fmt.Printf("  %s  %s\n", r.Item.ID, r.Item.Name)
	}

	return nil
}
