/*
Package picker is the engine facade the host application talks to.

It owns the catalog, the usage tracker, the display composer, and the grid
navigator for the current composition, and wires usage persistence through
an injected SnapshotStore. All engine methods are safe for concurrent use.
*/
package picker

import (
	"log"
	"sync"
	"time"

	"github.com/khanglvm/glyphpick/internal/catalog"
	"github.com/khanglvm/glyphpick/internal/display"
	"github.com/khanglvm/glyphpick/internal/grid"
	"github.com/khanglvm/glyphpick/internal/learning"
	"github.com/khanglvm/glyphpick/internal/search"
)

const (
	// DefaultColumns is the grid width used when the host supplies none.
	DefaultColumns = 10

	// DefaultRecentRows is the frequently-used section height in rows.
	DefaultRecentRows = 2
)

// SnapshotStore persists opaque usage snapshots. Implementations must
// tolerate being handed a blob whose encoding they do not inspect.
type SnapshotStore interface {
	// SaveSnapshot persists a usage snapshot blob.
	SaveSnapshot(blob []byte) error

	// LoadSnapshot returns the last persisted blob. ok is false when no
	// snapshot has ever been saved.
	LoadSnapshot() (blob []byte, ok bool, err error)
}

// Options configures a new engine. Zero values fall back to defaults.
type Options struct {
	// Columns is the fixed grid column count. Must not be negative.
	Columns int

	// RecentRows returns the current frequently-used section height in
	// rows. It is consulted on every composition, never cached, so the
	// host can change it between calls. Nil means DefaultRecentRows.
	RecentRows func() int

	// DecayFactor and MinScore tune the usage model; zero means default.
	DecayFactor float64
	MinScore    float64

	// Store persists usage snapshots after each recorded use. Nil
	// disables persistence.
	Store SnapshotStore
}

// Engine combines the core components behind the host-facing interface.
type Engine struct {
	catalog  *catalog.Catalog
	tracker  *learning.Tracker
	composer *display.Composer
	columns  int
	store    SnapshotStore

	mu       sync.Mutex
	sections []display.Section
	flat     []catalog.Item
	nav      *grid.Navigator
}

// New creates an engine over a loaded catalog. The catalog must not be nil.
// If a store is configured, the persisted snapshot is restored immediately;
// a malformed snapshot logs a warning and starts from an empty usage map.
func New(cat *catalog.Catalog, opts Options) *Engine {
	if cat == nil {
		panic("picker: catalog must not be nil")
	}

	columns := opts.Columns
	if columns == 0 {
		columns = DefaultColumns
	}
	if columns < 0 {
		panic("picker: column count must be positive")
	}

	recentRows := opts.RecentRows
	if recentRows == nil {
		recentRows = func() int { return DefaultRecentRows }
	}

	tracker := learning.NewTrackerWithOptions(cat, opts.DecayFactor, opts.MinScore)

	e := &Engine{
		catalog: cat,
		tracker: tracker,
		columns: columns,
		store:   opts.Store,
	}
	e.composer = display.NewComposer(cat, tracker, func() int {
		return recentRows() * columns
	})

	if e.store != nil {
		if blob, ok, err := e.store.LoadSnapshot(); err != nil {
			log.Printf("Warning: failed to load usage snapshot: %v", err)
		} else if ok {
			if err := e.ImportSnapshot(blob); err != nil {
				log.Printf("Warning: discarding usage snapshot: %v", err)
			}
		}
	}

	return e
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Columns returns the fixed grid column count.
func (e *Engine) Columns() int {
	return e.columns
}

// Search returns items ranked by relevance for a non-empty query. An empty
// query returns nil; browsing goes through ComposeDisplay instead.
func (e *Engine) Search(query string) []catalog.Item {
	return search.Rank(e.catalog.Items(), query)
}

// SearchResults is Search with the relevance scores attached.
func (e *Engine) SearchResults(query string) []search.Result {
	return search.RankResults(e.catalog.Items(), query)
}

// RecordUse records a use of a glyph and persists the updated usage
// snapshot. Unknown glyphs are rejected with learning.UnknownItemError.
func (e *Engine) RecordUse(id string, now time.Time) error {
	if err := e.tracker.RecordUse(id, now); err != nil {
		return err
	}
	e.persist()
	return nil
}

// TopUsed returns the current highest-frecency items.
func (e *Engine) TopUsed(n int) []catalog.Item {
	return e.tracker.TopN(n)
}

// UsageScore returns the current stored frecency score for a glyph.
func (e *Engine) UsageScore(id string) float64 {
	return e.tracker.Score(id)
}

// ClearUsage wipes all usage state and persists the empty snapshot.
func (e *Engine) ClearUsage() {
	e.tracker.ClearAll()
	e.persist()
}

// ComposeDisplay rebuilds the sectioned view for a query and returns the
// sections, the flat list, and the initial selection index (grid.NoSelection
// when the flat list is empty). The navigator for subsequent Navigate calls
// is rebuilt from this composition.
func (e *Engine) ComposeDisplay(query string) ([]display.Section, []catalog.Item, int) {
	sections, flat := e.composer.Compose(query)

	sizes := make([]int, len(sections))
	for i, s := range sections {
		sizes[i] = len(s.Items)
	}
	nav := grid.NewNavigator(sizes, e.columns)

	e.mu.Lock()
	e.sections = sections
	e.flat = flat
	e.nav = nav
	e.mu.Unlock()

	return sections, flat, nav.InitialSelection()
}

// Navigate computes the new selection index for a movement over the most
// recent composition. With no prior composition it composes the browse
// view first.
func (e *Engine) Navigate(dir grid.Direction, current int) int {
	e.mu.Lock()
	nav := e.nav
	e.mu.Unlock()

	if nav == nil {
		e.ComposeDisplay("")
		e.mu.Lock()
		nav = e.nav
		e.mu.Unlock()
	}
	return nav.Move(dir, current)
}

// ItemAt returns the flat-list item at an index from the most recent
// composition.
func (e *Engine) ItemAt(index int) (catalog.Item, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.flat) {
		return catalog.Item{}, false
	}
	return e.flat[index], true
}

// ExportSnapshot serializes the current usage state as an opaque blob.
func (e *Engine) ExportSnapshot() ([]byte, error) {
	return e.tracker.Snapshot()
}

// ImportSnapshot replaces usage state from a blob. A malformed blob leaves
// the engine running with an empty usage map and returns
// learning.MalformedSnapshotError for the host to log.
func (e *Engine) ImportSnapshot(blob []byte) error {
	return e.tracker.Restore(blob)
}

// persist writes the current snapshot to the store, if any. Persistence
// failures degrade to a warning; the in-memory state stays authoritative.
func (e *Engine) persist() {
	if e.store == nil {
		return
	}
	blob, err := e.tracker.Snapshot()
	if err != nil {
		log.Printf("Warning: failed to serialize usage snapshot: %v", err)
		return
	}
	if err := e.store.SaveSnapshot(blob); err != nil {
		log.Printf("Warning: failed to persist usage snapshot: %v", err)
	}
}
