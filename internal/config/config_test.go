package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Columns != DefaultColumns {
		t.Errorf("Columns = %d, want %d", cfg.Columns, DefaultColumns)
	}
	if cfg.RecentRows != DefaultRecentRows {
		t.Errorf("RecentRows = %d, want %d", cfg.RecentRows, DefaultRecentRows)
	}
	if cfg.DecayFactor != DefaultDecayFactor {
		t.Errorf("DecayFactor = %v, want %v", cfg.DecayFactor, DefaultDecayFactor)
	}
	if cfg.MinScore != DefaultMinScore {
		t.Errorf("MinScore = %v, want %v", cfg.MinScore, DefaultMinScore)
	}
}

func TestLoadFrom_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"catalogPath": "/data/emojis.json", "columns": 8}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.CatalogPath != "/data/emojis.json" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.Columns != 8 {
		t.Errorf("Columns = %d, want 8", cfg.Columns)
	}
	// Absent fields fall back to defaults.
	if cfg.DecayFactor != DefaultDecayFactor {
		t.Errorf("DecayFactor = %v, want default", cfg.DecayFactor)
	}
}

func TestLoadFrom_InvalidValuesReplaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"columns": -3, "decayFactor": 1.5, "minScore": -1}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Columns != DefaultColumns || cfg.DecayFactor != DefaultDecayFactor || cfg.MinScore != DefaultMinScore {
		t.Errorf("invalid values must fall back to defaults, got %+v", cfg)
	}
}

func TestLoadFrom_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := NewConfig()
	cfg.CatalogPath = "/data/emojis.json"
	cfg.Columns = 12

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.CatalogPath != cfg.CatalogPath || loaded.Columns != cfg.Columns {
		t.Errorf("round-trip mismatch: %+v vs %+v", loaded, cfg)
	}
}
