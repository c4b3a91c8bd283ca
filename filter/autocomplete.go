// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import (
	"strings"

	"github.com/catchupdays/wishlist/catalog"
)

// MaxCandidates is how many suggestions are listed before "and more...".
const MaxCandidates = 5

// MoreLabel is the text of the non-selectable overflow entry.
const MoreLabel = "and more..."

// Candidate is one suggestion row. Value is what is displayed, Key is shown
// as metadata. More marks the overflow entry.
type Candidate struct {
	Token string
	Key   string
	Value string
	Title string
	More  bool
}

// Match returns every catalog entry whose value contains all words of draft
// (case-insensitive) and which is not already in set.
func Match(cat *catalog.Catalog, set Set, draft string) []Candidate {
	words := strings.Fields(strings.ToLower(draft))

	var out []Candidate
	for _, e := range cat.Entries() {
		if set.Has(e.Token) || !containsAll(strings.ToLower(e.Value), words) {
			continue
		}
		out = append(out, Candidate{
			Token: e.Token,
			Key:   e.Key,
			Value: e.Value,
			Title: e.Group.Title,
		})
	}
	return out
}

// Cap trims matches to MaxCandidates, appending the "and more..." entry
// when some were cut.
func Cap(matches []Candidate) []Candidate {
	if len(matches) <= MaxCandidates {
		return matches
	}
	out := make([]Candidate, 0, MaxCandidates+1)
	out = append(out, matches[:MaxCandidates]...)
	return append(out, Candidate{Value: MoreLabel, More: true})
}

// Candidates returns the suggestion list for the current draft.
func (s State) Candidates(cat *catalog.Catalog) []Candidate {
	return Cap(Match(cat, s.Set, s.Draft))
}

func containsAll(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}
