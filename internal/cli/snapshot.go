package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewExportCmd creates the 'export' command for writing the usage snapshot.
func NewExportCmd() *cobra.Command {
	var catalogPath string
	var output string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export the usage snapshot",
		Long:    `Write the current usage snapshot blob to stdout or a file.`,
		Example: `  glyphpick export > usage.json
  glyphpick export --output usage.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(catalogPath, output)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog JSON file (overrides config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

// runExport serializes usage state to stdout or a file.
func runExport(catalogPath, output string) error {
	eng, store, err := loadEngine(catalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	blob, err := eng.ExportSnapshot()
	if err != nil {
		return fmt.Errorf("failed to export snapshot: %w", err)
	}

	if output == "" {
		fmt.Println(string(blob))
		return nil
	}

	if err := os.WriteFile(output, blob, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	fmt.Printf("Snapshot written to %s\n", output)
	return nil
}

// NewImportCmd creates the 'import' command for restoring a usage snapshot.
func NewImportCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:     "import <file>",
		Short:   "Import a usage snapshot",
		Long:    `Replace the usage state with a previously exported snapshot. A malformed snapshot resets usage to empty.`,
		Example: `  glyphpick import usage.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args[0], catalogPath)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog JSON file (overrides config)")

	return cmd
}

// runImport restores usage state from a snapshot file and persists it.
func runImport(path, catalogPath string) error {
	eng, store, err := loadEngine(catalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	blob, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := eng.ImportSnapshot(blob); err != nil {
		fmt.Printf("Snapshot was malformed; usage reset to empty (%v)\n", err)
	} else {
		fmt.Println("Snapshot imported.")
	}

	// Persist whatever state import left behind.
	if blob, err := eng.ExportSnapshot(); err == nil {
		if err := store.SaveSnapshot(blob); err != nil {
			fmt.Printf("Warning: failed to persist imported snapshot: %v\n", err)
		}
	}

	return nil
}
