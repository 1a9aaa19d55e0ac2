package search

import (
	"fmt"
	"testing"

	"github.com/khanglvm/glyphpick/internal/catalog"
)

// singleToken is a one-token item so precedence tests see no specificity
// penalty and no canonical bonus unless set explicitly.
func singleToken(name string, keywords []string, sortOrder int) catalog.Item {
	return catalog.Item{ID: name, Name: name, Keywords: keywords, Category: "test", SortOrder: sortOrder}
}

func TestTokenize(t *testing.T) {
	words := Tokenize("  Thumbs   UP ")
	if len(words) != 2 || words[0] != "thumbs" || words[1] != "up" {
		t.Errorf("Tokenize() = %v, want [thumbs up]", words)
	}

	if got := Tokenize("   "); len(got) != 0 {
		t.Errorf("expected no words for blank query, got %v", got)
	}
}

func TestScore_EmptyQuery(t *testing.T) {
	item := singleToken("smile", nil, 3000)
	if got := Score(item, ""); got != 0 {
		t.Errorf("expected score 0 for empty query, got %d", got)
	}
	if got := Score(item, "   "); got != 0 {
		t.Errorf("expected score 0 for whitespace query, got %d", got)
	}
}

func TestScore_PrecedenceTable(t *testing.T) {
	// Each case isolates one precedence class on a one-token item whose
	// name token is covered by the query word (so no specificity penalty)
	// with sortOrder past the bonus ceiling (so no canonical bonus); the
	// raw sub-score is score/1000.
	cases := []struct {
		name     string
		item     catalog.Item
		query    string
		subScore int
	}{
		{"name exact", singleToken("smile", nil, 3000), "smile", 150},
		{"keyword exact", singleToken("smiler", []string{"smile"}, 3000), "smile", 100},
		{"name prefix", singleToken("smileface", nil, 3000), "smile", 95},
		{"keyword prefix", singleToken("smi", []string{"smileface"}, 3000), "smile", 60},
		{"substring", singleToken("smi", []string{"bigsmile"}, 3000), "smile", 20},
	}

	prev := 1 << 30
	for _, tc := range cases {
		got := Score(tc.item, tc.query)
		if got != tc.subScore*1000 {
			t.Errorf("%s: Score() = %d, want %d", tc.name, got, tc.subScore*1000)
		}
		if got >= prev {
			t.Errorf("%s: precedence not strictly decreasing (%d >= %d)", tc.name, got, prev)
		}
		prev = got
	}
}

func TestScore_NameTokenClasses(t *testing.T) {
	// Multi-token names; the query word covers one token, the other token
	// is uncovered, so both items carry the same penalty and the class
	// ordering shows through.
	tokenExact := catalog.Item{ID: "a", Name: "wry smile", SortOrder: 3000}
	tokenPrefix := catalog.Item{ID: "b", Name: "wry smiley", SortOrder: 3000}

	gotExact := Score(tokenExact, "smile")
	gotPrefix := Score(tokenPrefix, "smile")

	if want := 85*1000 - 5000; gotExact != want {
		t.Errorf("name token exact: Score() = %d, want %d", gotExact, want)
	}
	if want := 75*1000 - 5000; gotPrefix != want {
		t.Errorf("name token prefix: Score() = %d, want %d", gotPrefix, want)
	}
	if gotExact <= gotPrefix {
		t.Errorf("token exact (%d) should beat token prefix (%d)", gotExact, gotPrefix)
	}
}

func TestScore_AllWordsMustMatch(t *testing.T) {
	item := catalog.Item{ID: "a", Name: "grinning face", Keywords: []string{"happy"}, SortOrder: 1}

	if got := Score(item, "grinning xylophone"); got != 0 {
		t.Errorf("one unmatched word must disqualify the item, got %d", got)
	}
	if got := Score(item, "grinning happy"); got <= 0 {
		t.Errorf("all-matching words must score positive, got %d", got)
	}
}

func TestScore_SpecificityPenaltyDelta(t *testing.T) {
	// Identical match class; the second item carries two extra unrelated
	// name tokens, so it scores exactly 2*5000 lower.
	tight := catalog.Item{ID: "a", Name: "red heart", SortOrder: 3000}
	loose := catalog.Item{ID: "b", Name: "red heart on fire", SortOrder: 3000}

	queryWords := "red heart"
	diff := Score(tight, queryWords) - Score(loose, queryWords)
	if diff != 2*5000 {
		t.Errorf("expected penalty delta 10000, got %d", diff)
	}
}

func TestScore_CanonicalBonus(t *testing.T) {
	early := singleToken("smile", nil, 1)
	late := singleToken("smile", nil, 2999)
	past := singleToken("smile", nil, 9999)

	if got, want := Score(early, "smile"), 150*1000+2999; got != want {
		t.Errorf("early item: Score() = %d, want %d", got, want)
	}
	if got, want := Score(late, "smile"), 150*1000+1; got != want {
		t.Errorf("late item: Score() = %d, want %d", got, want)
	}
	if got, want := Score(past, "smile"), 150*1000; got != want {
		t.Errorf("item past bonus ceiling: Score() = %d, want %d", got, want)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	item := catalog.Item{ID: "a", Name: "grinning face", Keywords: []string{"Happy"}, SortOrder: 1}
	if Score(item, "HAPPY") != Score(item, "happy") {
		t.Error("scoring must be case-insensitive")
	}
}

func TestRank_KeywordBeatsLooseNameToken(t *testing.T) {
	// A keyword exact match on a tight name must outrank a name-token
	// match buried in a five-token name.
	grinning := catalog.Item{
		ID:        "😀",
		Name:      "grinning face",
		Keywords:  []string{"happy", "smile"},
		Category:  "Smileys & Emotion",
		SortOrder: 1,
	}
	wry := catalog.Item{
		ID:        "😼",
		Name:      "cat face with wry smile",
		Keywords:  []string{"cat"},
		Category:  "Smileys & Emotion",
		SortOrder: 110,
	}

	ranked := Rank([]catalog.Item{wry, grinning}, "smile")
	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].ID != grinning.ID {
		t.Errorf("expected %q first, got %q", grinning.ID, ranked[0].ID)
	}
}

func TestRank_FiltersAndOrders(t *testing.T) {
	items := []catalog.Item{
		{ID: "a", Name: "dog", SortOrder: 10},
		{ID: "b", Name: "smile", SortOrder: 20},
		{ID: "c", Name: "smile", SortOrder: 5},
	}

	ranked := Rank(items, "smile")
	if len(ranked) != 2 {
		t.Fatalf("expected unmatched item filtered out, got %d results", len(ranked))
	}
	// Equal match class; lower sortOrder wins the tie via the bonus and
	// the tiebreak rule.
	if ranked[0].ID != "c" || ranked[1].ID != "b" {
		t.Errorf("expected order [c b], got [%s %s]", ranked[0].ID, ranked[1].ID)
	}
}

func TestRank_StableForExactTies(t *testing.T) {
	// Same name, same sortOrder: insertion order must be preserved.
	items := []catalog.Item{
		{ID: "first", Name: "smile", SortOrder: 50},
		{ID: "second", Name: "smile", SortOrder: 50},
	}
	ranked := Rank(items, "smile")
	if len(ranked) != 2 || ranked[0].ID != "first" {
		t.Errorf("stable sort must keep insertion order for exact ties, got %v", ranked)
	}
}

func TestRank_EmptyQuery(t *testing.T) {
	items := []catalog.Item{{ID: "a", Name: "smile", SortOrder: 1}}
	if got := Rank(items, ""); got != nil {
		t.Errorf("empty query must return nil (browse path owns it), got %v", got)
	}
}

func TestRankResults_Scores(t *testing.T) {
	items := []catalog.Item{{ID: "a", Name: "smile", SortOrder: 3000}}
	results := RankResults(items, "smile")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Score != 150*1000 {
		t.Errorf("Score = %d, want %d", results[0].Score, 150*1000)
	}
}

func BenchmarkRank(b *testing.B) {
	// Catalog-scale ranking must stay well under a display frame.
	items := make([]catalog.Item, 0, 5000)
	for i := 0; i < 5000; i++ {
		items = append(items, catalog.Item{
			ID:        fmt.Sprintf("g%d", i),
			Name:      fmt.Sprintf("glyph face number %d", i),
			Keywords:  []string{"face", "glyph", fmt.Sprintf("kw%d", i)},
			SortOrder: i,
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Rank(items, "glyph face")
	}
}
