/*
Package catalog holds the immutable glyph catalog.

The catalog is loaded once at startup from a JSON array derived from the
emoji-data / emojilib merge pipeline:

  [
    {
      "emoji": "😀",
      "name": "grinning face",
      "keywords": ["grinning", "face", "smile", "happy"],
      "category": "Smileys & Emotion",
      "sortOrder": 1
    },
    ...
  ]

Items are never mutated after load. Identity and equality are both defined
by the glyph itself (the ID field).
*/
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// CanonicalCategories is the fixed display order for categories, matching
// the upstream emoji-data taxonomy. Categories not listed here sort after
// the known ones, in first-seen order.
var CanonicalCategories = []string{
	"Smileys & Emotion",
	"People & Body",
	"Animals & Nature",
	"Food & Drink",
	"Travel & Places",
	"Activities",
	"Objects",
	"Symbols",
	"Flags",
}

// Item is a single searchable glyph with its static metadata.
type Item struct {
	// ID is the glyph itself and the stable unique key.
	ID string `json:"emoji"`

	// Name is the primary lowercase label (e.g., "grinning face").
	Name string `json:"name"`

	// Keywords are alternate search terms, ordered, not necessarily unique.
	Keywords []string `json:"keywords"`

	// Category is the grouping key (e.g., "Smileys & Emotion").
	Category string `json:"category"`

	// SortOrder is the Unicode/catalog canonical position. Lower is more
	// canonical. Used only as a ranking tiebreaker.
	SortOrder int `json:"sortOrder"`
}

// Catalog is the immutable, load-once item collection.
type Catalog struct {
	items      []Item
	byID       map[string]int
	categories []string
	byCategory map[string][]Item
}

// New builds a catalog from raw items. Entries with a blank ID or name are
// skipped, and duplicate IDs keep the first occurrence, mirroring the data
// build pipeline.
func New(items []Item) *Catalog {
	c := &Catalog{
		byID:       make(map[string]int, len(items)),
		byCategory: make(map[string][]Item),
	}

	for _, item := range items {
		if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" {
			continue
		}
		if _, exists := c.byID[item.ID]; exists {
			continue
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)

		if _, seen := c.byCategory[item.Category]; !seen {
			c.categories = append(c.categories, item.Category)
		}
		c.byCategory[item.Category] = append(c.byCategory[item.Category], item)
	}

	// Order categories canonically; unknown categories keep first-seen
	// order after the known ones.
	rank := make(map[string]int, len(CanonicalCategories))
	for i, name := range CanonicalCategories {
		rank[name] = i
	}
	sort.SliceStable(c.categories, func(i, j int) bool {
		ri, iKnown := rank[c.categories[i]]
		rj, jKnown := rank[c.categories[j]]
		if iKnown && jKnown {
			return ri < rj
		}
		return iKnown && !jKnown
	})

	// Within a category, items display in canonical order.
	for _, name := range c.categories {
		group := c.byCategory[name]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].SortOrder < group[j].SortOrder
		})
	}

	return c
}

// LoadFrom reads and parses a catalog JSON file.
func LoadFrom(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return New(items), nil
}

// Items returns all items in catalog insertion order. Callers must not
// modify the returned slice.
func (c *Catalog) Items() []Item {
	return c.items
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup returns the item for a glyph ID.
func (c *Catalog) Lookup(id string) (Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}

// IndexOf returns the catalog insertion position of a glyph ID, or -1 if
// the glyph is unknown. Used as the final ranking tiebreaker.
func (c *Catalog) IndexOf(id string) int {
	idx, ok := c.byID[id]
	if !ok {
		return -1
	}
	return idx
}

// Categories returns the non-empty category names in canonical order.
func (c *Catalog) Categories() []string {
	return c.categories
}

// ItemsInCategory returns a category's items sorted ascending by canonical
// order. Callers must not modify the returned slice.
func (c *Catalog) ItemsInCategory(category string) []Item {
	return c.byCategory[category]
}
