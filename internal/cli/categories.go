package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCategoriesCmd creates the 'categories' command for listing catalog
// categories in canonical order.
func NewCategoriesCmd() *cobra.Command {
	var catalogPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List catalog categories",
		Long:    `Display the catalog's categories in canonical display order with their glyph counts.`,
		Example: `  glyphpick categories
  glyphpick categories --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(catalogPath, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog JSON file (overrides config)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runCategories prints the canonical category listing.
func runCategories(catalogPath string, jsonOutput bool) error {
	eng, store, err := loadEngine(catalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	cat := eng.Catalog()

	if jsonOutput {
		type entry struct {
			Category string `json:"category"`
			Count    int    `json:"count"`
		}
		entries := make([]entry, 0, len(cat.Categories()))
		for _, name := range cat.Categories() {
			entries = append(entries, entry{Category: name, Count: len(cat.ItemsInCategory(name))})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize categories: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Categories (%d glyphs total):\n\n", cat.Len())
	for _, name := range cat.Categories() {
		fmt.Printf("  %-20s %d\n", name, len(cat.ItemsInCategory(name)))
	}

	return nil
}
