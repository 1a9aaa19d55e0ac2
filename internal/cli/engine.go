/*
Package cli implements the glyphpick command-line interface.

Each command constructor returns a cobra command; the engine behind them is
assembled from the settings file, the catalog it points at, and the SQLite
usage store.
*/
package cli

import (
	"fmt"
	"log"

	"github.com/khanglvm/glyphpick/internal/catalog"
	"github.com/khanglvm/glyphpick/internal/config"
	"github.com/khanglvm/glyphpick/internal/picker"
	"github.com/khanglvm/glyphpick/internal/storage"
)

// loadEngine builds the picker engine from configuration. catalogOverride,
// when non-empty, takes precedence over the configured catalog path. The
// returned storage is already initialized and owned by the caller.
func loadEngine(catalogOverride string) (*picker.Engine, *storage.SQLiteStorage, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	catalogPath := cfg.CatalogPath
	if catalogOverride != "" {
		catalogPath = catalogOverride
	}
	if catalogPath == "" {
		return nil, nil, fmt.Errorf("no catalog configured: set catalogPath in ~/.glyphpick.json or pass --catalog")
	}

	cat, err := catalog.LoadFrom(catalogPath)
	if err != nil {
		return nil, nil, err
	}

	store := storage.NewStorage()
	if err := store.Init(); err != nil {
		log.Printf("Warning: usage persistence unavailable: %v", err)
	}

	recentRows := cfg.RecentRows
	eng := picker.New(cat, picker.Options{
		Columns:     cfg.Columns,
		RecentRows:  func() int { return recentRows },
		DecayFactor: cfg.DecayFactor,
		MinScore:    cfg.MinScore,
		Store:       store,
	})

	return eng, store, nil
}
