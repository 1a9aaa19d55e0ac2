/*
Package learning implements the decaying usage-frequency model ("frecency").

Every recorded use first multiplies all stored scores by a constant decay
factor, then boosts the used glyph by 1.0. Decay is strictly use-driven:
inactivity alone never lowers a score, so a user who opens the picker once
a month is not penalized relative to one who opens it hourly. Entries whose
score falls below a floor are pruned to bound memory.

This is deliberately not a continuous-time exponential decay model; the
decay-then-boost sequence and its float rounding are part of the contract.
*/
package learning

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/khanglvm/glyphpick/internal/catalog"
)

const (
	// DefaultDecayFactor multiplies every stored score on each use.
	DefaultDecayFactor = 0.95

	// DefaultMinScore is the pruning floor; decayed entries below it are
	// deleted.
	DefaultMinScore = 0.001

	// useBoost is added to the used glyph's score after decay.
	useBoost = 1.0
)

// Record is the mutable per-glyph usage state.
type Record struct {
	Score      float64   `json:"score"`
	LastUsedAt time.Time `json:"lastUsedAt"`
}

// Tracker maintains per-glyph usage records. All methods are safe for
// concurrent use; RecordUse is atomic with respect to TopN and Snapshot,
// so a reader never observes a state mid-decay.
type Tracker struct {
	mu          sync.Mutex
	catalog     *catalog.Catalog
	decayFactor float64
	minScore    float64
	records     map[string]Record
}

// NewTracker creates a tracker with the default decay factor and floor.
func NewTracker(cat *catalog.Catalog) *Tracker {
	return NewTrackerWithOptions(cat, DefaultDecayFactor, DefaultMinScore)
}

// NewTrackerWithOptions creates a tracker with explicit decay parameters.
// Out-of-range parameters fall back to the defaults.
func NewTrackerWithOptions(cat *catalog.Catalog, decayFactor, minScore float64) *Tracker {
	if decayFactor <= 0 || decayFactor >= 1 {
		decayFactor = DefaultDecayFactor
	}
	if minScore <= 0 {
		minScore = DefaultMinScore
	}
	return &Tracker{
		catalog:     cat,
		decayFactor: decayFactor,
		minScore:    minScore,
		records:     make(map[string]Record),
	}
}

// RecordUse applies decay to every stored score, then boosts the used
// glyph. Glyphs not present in the catalog are rejected with
// UnknownItemError rather than silently creating a record.
func (t *Tracker) RecordUse(id string, now time.Time) error {
	if _, ok := t.catalog.Lookup(id); !ok {
		return &UnknownItemError{ID: id}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Decay first, boost second; the used glyph's previous score decays
	// too before receiving the boost.
	for key, rec := range t.records {
		rec.Score *= t.decayFactor
		t.records[key] = rec
	}

	rec := t.records[id]
	rec.Score += useBoost
	rec.LastUsedAt = now
	t.records[id] = rec

	for key, rec := range t.records {
		if rec.Score < t.minScore {
			delete(t.records, key)
		}
	}

	return nil
}

// Score returns the current stored score for a glyph, or 0 if it has no
// usage record.
func (t *Tracker) Score(id string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.records[id].Score
}

// Len returns the number of live usage records.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// TopN returns up to n items ordered by current stored score descending.
// Ties break by most recent use, then by catalog insertion order. Scores
// are used as stored; decay already happened at use time, so no further
// time discount applies here.
func (t *Tracker) TopN(n int) []catalog.Item {
	if n <= 0 {
		return nil
	}

	t.mu.Lock()
	type ranked struct {
		item       catalog.Item
		score      float64
		lastUsedAt time.Time
		position   int
	}
	entries := make([]ranked, 0, len(t.records))
	for id, rec := range t.records {
		item, ok := t.catalog.Lookup(id)
		if !ok {
			continue
		}
		entries = append(entries, ranked{
			item:       item,
			score:      rec.Score,
			lastUsedAt: rec.LastUsedAt,
			position:   t.catalog.IndexOf(id),
		})
	}
	t.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		if !entries[i].lastUsedAt.Equal(entries[j].lastUsedAt) {
			return entries[i].lastUsedAt.After(entries[j].lastUsedAt)
		}
		return entries[i].position < entries[j].position
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	items := make([]catalog.Item, len(entries))
	for i, e := range entries {
		items[i] = e.item
	}
	return items
}

// ClearAll wipes all usage state.
func (t *Tracker) ClearAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = make(map[string]Record)
}

// Snapshot serializes the usage map for the persistence collaborator. The
// encoding (JSON map of glyph id to record) round-trips records exactly.
func (t *Tracker) Snapshot() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return json.Marshal(t.records)
}

// Restore replaces the usage map from a snapshot blob. A malformed blob
// leaves the tracker with an empty map and returns MalformedSnapshotError;
// the host keeps running either way. Entries for glyphs no longer in the
// catalog or below the pruning floor are dropped during restore.
func (t *Tracker) Restore(blob []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = make(map[string]Record)

	if len(blob) == 0 {
		return nil
	}

	var decoded map[string]Record
	if err := json.Unmarshal(blob, &decoded); err != nil {
		return &MalformedSnapshotError{Err: err}
	}

	for id, rec := range decoded {
		if _, ok := t.catalog.Lookup(id); !ok {
			continue
		}
		if rec.Score < t.minScore {
			continue
		}
		t.records[id] = rec
	}

	return nil
}
