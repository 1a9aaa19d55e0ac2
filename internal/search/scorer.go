/*
Package search implements relevance scoring and ranking for glyph queries.

Scoring is deterministic and exact: each query word is matched against an
item under a fixed precedence table, every word must match (a single miss
disqualifies the item), and the summed match component is adjusted by a
specificity penalty for uncovered name tokens plus a low-weight canonical
order bonus. The scorer is pure and never touches usage state.
*/
package search

import (
	"sort"
	"strings"

	"github.com/khanglvm/glyphpick/internal/catalog"
)

// Per-word match sub-scores, highest precedence first.
const (
	scoreNameExact       = 150 // word equals the full name
	scoreKeywordExact    = 100 // word equals a keyword
	scoreNamePrefix      = 95  // name starts with word
	scoreNameToken       = 85  // word equals one name token
	scoreNameTokenPrefix = 75  // some name token starts with word
	scoreKeywordPrefix   = 60  // some keyword starts with word
	scoreSubstring       = 20  // word appears anywhere in name + keywords
)

const (
	// matchWeight scales the summed per-word sub-scores so that match
	// quality dominates the penalty and bonus terms.
	matchWeight = 1000

	// uncoveredTokenPenalty is charged per name token no query word
	// covers. It pushes tight name matches above incidental hits inside
	// long names.
	uncoveredTokenPenalty = 5000

	// canonicalBonusCeiling caps the canonical-order bonus; items past
	// this position in the catalog get no bonus at all.
	canonicalBonusCeiling = 3000
)

// Result pairs an item with its relevance score.
type Result struct {
	Item  catalog.Item `json:"item"`
	Score int          `json:"score"`
}

// Tokenize lower-cases, trims, and splits a query on whitespace.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(query)))
}

// Score computes the relevance of one item against a query. A result of 0
// means the item is excluded. An empty query always scores 0; callers are
// expected to route empty queries to the browse path instead.
func Score(item catalog.Item, query string) int {
	return scoreWords(item, Tokenize(query))
}

func scoreWords(item catalog.Item, words []string) int {
	if len(words) == 0 {
		return 0
	}

	name := strings.ToLower(item.Name)
	nameTokens := strings.Fields(name)

	keywords := make([]string, len(item.Keywords))
	for i, kw := range item.Keywords {
		keywords[i] = strings.ToLower(kw)
	}
	haystack := name + " " + strings.Join(keywords, " ")

	match := 0
	for _, word := range words {
		sub := wordScore(word, name, nameTokens, keywords, haystack)
		if sub == 0 {
			// Every word must match; one miss disqualifies the item.
			return 0
		}
		match += sub
	}

	penalty := uncoveredTokenPenalty * uncoveredTokens(nameTokens, words)

	bonus := canonicalBonusCeiling - item.SortOrder
	if bonus < 0 {
		bonus = 0
	}

	return match*matchWeight - penalty + bonus
}

// wordScore returns the best sub-score a single query word achieves against
// an item, walking the precedence table from strongest to weakest.
func wordScore(word, name string, nameTokens, keywords []string, haystack string) int {
	if word == name {
		return scoreNameExact
	}
	for _, kw := range keywords {
		if word == kw {
			return scoreKeywordExact
		}
	}
	if strings.HasPrefix(name, word) {
		return scoreNamePrefix
	}
	for _, token := range nameTokens {
		if word == token {
			return scoreNameToken
		}
	}
	for _, token := range nameTokens {
		if strings.HasPrefix(token, word) {
			return scoreNameTokenPrefix
		}
	}
	for _, kw := range keywords {
		if strings.HasPrefix(kw, word) {
			return scoreKeywordPrefix
		}
	}
	if strings.Contains(haystack, word) {
		return scoreSubstring
	}
	return 0
}

// uncoveredTokens counts name tokens not covered by any query word. A token
// is covered when it starts with a query word or a query word starts with
// it. Only name tokens are inspected; unmatched keywords carry no penalty,
// matching the original relevance model.
func uncoveredTokens(nameTokens, words []string) int {
	uncovered := 0
	for _, token := range nameTokens {
		covered := false
		for _, word := range words {
			if strings.HasPrefix(token, word) || strings.HasPrefix(word, token) {
				covered = true
				break
			}
		}
		if !covered {
			uncovered++
		}
	}
	return uncovered
}

// RankResults filters and orders items by relevance: zero scores dropped,
// descending by score, ties broken by ascending canonical order, then by
// catalog insertion order (the sort is stable).
func RankResults(items []catalog.Item, query string) []Result {
	words := Tokenize(query)
	if len(words) == 0 {
		return nil
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		if s := scoreWords(item, words); s > 0 {
			results = append(results, Result{Item: item, Score: s})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Item.SortOrder < results[j].Item.SortOrder
	})

	return results
}

// Rank is RankResults without the scores, for callers that only need the
// ordered items.
func Rank(items []catalog.Item, query string) []catalog.Item {
	results := RankResults(items, query)
	if len(results) == 0 {
		return nil
	}
	ranked := make([]catalog.Item, len(results))
	for i, r := range results {
		ranked[i] = r.Item
	}
	return ranked
}
