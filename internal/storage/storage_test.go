package storage

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/khanglvm/glyphpick/internal/learning"
)

func testStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s := NewStorageAt(filepath.Join(t.TempDir(), "usage.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func snapshotBlob(t *testing.T, records map[string]learning.Record) []byte {
	t.Helper()
	blob, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("failed to marshal snapshot: %v", err)
	}
	return blob
}

func TestInit_Idempotent(t *testing.T) {
	s := testStorage(t)
	if err := s.Init(); err != nil {
		t.Errorf("second Init failed: %v", err)
	}
}

func TestSaveLoadSnapshot_RoundTrip(t *testing.T) {
	s := testStorage(t)

	now := time.Now().UTC().Truncate(time.Millisecond)
	records := map[string]learning.Record{
		"😀": {Score: 2.8525, LastUsedAt: now},
		"🍕": {Score: 0.95, LastUsedAt: now.Add(-time.Hour)},
	}

	if err := s.SaveSnapshot(snapshotBlob(t, records)); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	blob, ok, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a persisted snapshot")
	}

	var loaded map[string]learning.Record
	if err := json.Unmarshal(blob, &loaded); err != nil {
		t.Fatalf("loaded blob does not decode: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d records, want 2", len(loaded))
	}
	if got := loaded["😀"]; got.Score != 2.8525 || !got.LastUsedAt.Equal(now) {
		t.Errorf("😀 round-trip = %+v, want score 2.8525 at %v", got, now)
	}
}

func TestSaveSnapshot_ReplacesPreviousRows(t *testing.T) {
	s := testStorage(t)
	now := time.Now()

	s.SaveSnapshot(snapshotBlob(t, map[string]learning.Record{
		"😀": {Score: 1, LastUsedAt: now},
		"🍕": {Score: 1, LastUsedAt: now},
	}))
	s.SaveSnapshot(snapshotBlob(t, map[string]learning.Record{
		"🐶": {Score: 1, LastUsedAt: now},
	}))

	blob, ok, err := s.LoadSnapshot()
	if err != nil || !ok {
		t.Fatalf("LoadSnapshot failed: ok=%v err=%v", ok, err)
	}
	var loaded map[string]learning.Record
	json.Unmarshal(blob, &loaded)
	if len(loaded) != 1 {
		t.Errorf("loaded %d records, want 1 (save replaces rows)", len(loaded))
	}
	if _, exists := loaded["🐶"]; !exists {
		t.Error("expected only the latest snapshot's rows")
	}
}

func TestSaveSnapshot_RejectsMalformedBlob(t *testing.T) {
	s := testStorage(t)
	if err := s.SaveSnapshot([]byte("{oops")); err == nil {
		t.Error("expected error for malformed snapshot blob")
	}
}

func TestLoadSnapshot_Empty(t *testing.T) {
	s := testStorage(t)
	_, ok, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if ok {
		t.Error("expected ok=false for an empty store")
	}
}

func TestRecordSearch(t *testing.T) {
	s := testStorage(t)

	record := NewSearchRecord("smile", 3)
	if record.SearchID == "" {
		t.Error("SearchID must be set")
	}
	if record.QueryHash == "" || record.QueryHash == "smile" {
		t.Error("query must be stored hashed, never raw")
	}
	if err := s.RecordSearch(record); err != nil {
		t.Errorf("RecordSearch failed: %v", err)
	}
}

func TestNewSearchRecord_HashStable(t *testing.T) {
	a := NewSearchRecord("smile", 1)
	b := NewSearchRecord("smile", 1)
	if a.QueryHash != b.QueryHash {
		t.Error("equal queries must hash equally")
	}
	if a.SearchID == b.SearchID {
		t.Error("search ids must be unique")
	}
}

func TestCleanup(t *testing.T) {
	s := testStorage(t)
	s.RecordSearch(NewSearchRecord("smile", 1))

	if err := s.Cleanup(30 * 24 * time.Hour); err != nil {
		t.Errorf("Cleanup failed: %v", err)
	}
}

func TestDisabledStorage_NoOps(t *testing.T) {
	s := &SQLiteStorage{enabled: false}

	if err := s.Init(); err != nil {
		t.Errorf("disabled Init must be a no-op, got %v", err)
	}
	if err := s.SaveSnapshot([]byte("{}")); err != nil {
		t.Errorf("disabled SaveSnapshot must be a no-op, got %v", err)
	}
	if _, ok, err := s.LoadSnapshot(); ok || err != nil {
		t.Errorf("disabled LoadSnapshot must return nothing, got ok=%v err=%v", ok, err)
	}
	if err := s.RecordSearch(NewSearchRecord("q", 0)); err != nil {
		t.Errorf("disabled RecordSearch must be a no-op, got %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("disabled Close must be a no-op, got %v", err)
	}
}
