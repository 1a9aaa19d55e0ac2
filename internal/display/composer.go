/*
Package display assembles the sectioned view the picker renders.

For an empty query it builds a "Frequently Used" section from the usage
tracker (when any usage exists) followed by one section per catalog
category in canonical order. For a non-empty query it builds a single
results section from the relevance ranking. Sections are display caches,
recomputed on every call, never a source of truth.
*/
package display

import (
	"github.com/khanglvm/glyphpick/internal/catalog"
	"github.com/khanglvm/glyphpick/internal/learning"
	"github.com/khanglvm/glyphpick/internal/search"
)

// Section IDs for the non-category sections.
const (
	SectionRecent  = "recent"
	SectionResults = "results"
)

// Section is a titled, ordered sub-list of items shown together.
type Section struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Items []catalog.Item `json:"items"`
}

// Composer builds sections and the flat navigation list.
type Composer struct {
	catalog   *catalog.Catalog
	tracker   *learning.Tracker
	maxRecent func() int
}

// NewComposer creates a composer. maxRecent is consulted on every Compose
// call (not cached) because the surrounding configuration can change
// between calls; it returns the item capacity of the frequently-used
// section, typically rows times columns.
func NewComposer(cat *catalog.Catalog, tracker *learning.Tracker, maxRecent func() int) *Composer {
	return &Composer{
		catalog:   cat,
		tracker:   tracker,
		maxRecent: maxRecent,
	}
}

// Compose builds the section list and the flat concatenation of all
// section items for a query. The flat list is what index-based selection
// and navigation operate on.
func (c *Composer) Compose(query string) ([]Section, []catalog.Item) {
	var sections []Section

	if len(search.Tokenize(query)) == 0 {
		sections = c.browseSections()
	} else {
		sections = c.resultSections(query)
	}

	total := 0
	for _, s := range sections {
		total += len(s.Items)
	}
	flat := make([]catalog.Item, 0, total)
	for _, s := range sections {
		flat = append(flat, s.Items...)
	}

	return sections, flat
}

// browseSections builds the empty-query view: frequently used first, then
// every non-empty category in canonical order.
func (c *Composer) browseSections() []Section {
	var sections []Section

	if recent := c.tracker.TopN(c.maxRecent()); len(recent) > 0 {
		sections = append(sections, Section{
			ID:    SectionRecent,
			Title: "Frequently Used",
			Items: recent,
		})
	}

	for _, category := range c.catalog.Categories() {
		items := c.catalog.ItemsInCategory(category)
		if len(items) == 0 {
			continue
		}
		sections = append(sections, Section{
			ID:    category,
			Title: category,
			Items: items,
		})
	}

	return sections
}

// resultSections builds the single search-results section.
func (c *Composer) resultSections(query string) []Section {
	results := search.Rank(c.catalog.Items(), query)
	title := "Results"
	if len(results) == 0 {
		title = "No Results"
	}
	return []Section{{
		ID:    SectionResults,
		Title: title,
		Items: results,
	}}
}
