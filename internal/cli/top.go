package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewTopCmd creates the 'top' command for listing frequently used glyphs.
func NewTopCmd() *cobra.Command {
	var catalogPath string
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "top",
		Short:   "List the most frequently used glyphs",
		Long:    `Display glyphs ranked by decayed usage score, most relevant lately first.`,
		Example: `  glyphpick top
  glyphpick top --limit 5 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTop(catalogPath, limit, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog JSON file (overrides config)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of glyphs")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runTop prints the current frecency ranking.
func runTop(catalogPath string, limit int, jsonOutput bool) error {
	eng, store, err := loadEngine(catalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	items := eng.TopUsed(limit)

	if jsonOutput {
		type entry struct {
			Glyph string  `json:"glyph"`
			Name  string  `json:"name"`
			Score float64 `json:"score"`
		}
		entries := make([]entry, len(items))
		for i, item := range items {
			entries[i] = entry{Glyph: item.ID, Name: item.Name, Score: eng.UsageScore(item.ID)}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize usage ranking: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(items) == 0 {
		fmt.Println("No usage recorded yet.")
		return nil
	}

	fmt.Printf("Frequently used (%d):\n\n", len(items))
	for _, item := range items {
		fmt.Printf("  %s  %-30s %.4f\n", item.ID, item.Name, eng.UsageScore(item.ID))
	}

	return nil
}
