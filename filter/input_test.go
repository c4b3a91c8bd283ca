// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catchupdays/wishlist/catalog"
)

func TestBackspaceSelectsThenDeletes(t *testing.T) {
	s := NewState(NewSet("label:FE", "language:Rust"))

	s = s.HandleKey(KeyBackspace)
	assert.Equal(t, "language:Rust", s.Focused)
	assert.Equal(t, 2, s.Set.Len())

	s = s.HandleKey(KeyBackspace)
	assert.False(t, s.HasFocus())
	assert.Equal(t, []string{"label:FE"}, s.Set.Tokens())

	s = s.HandleKey(KeyBackspace)
	s = s.HandleKey(KeyBackspace)
	assert.Equal(t, 0, s.Set.Len())
	assert.Equal(t, PhaseIdleEmpty, s.Phase())
}

func TestBackspaceIgnoredWhileDrafting(t *testing.T) {
	s := NewState(NewSet("label:FE")).Type("ru")
	got := s.HandleKey(KeyBackspace)
	assert.Equal(t, s, got)
}

func TestBackspaceOnEmptySetIsNoop(t *testing.T) {
	s := NewState(Set{})
	assert.Equal(t, s, s.HandleKey(KeyBackspace))
}

func TestArrowsNavigateOnlyWithEmptyDraft(t *testing.T) {
	s := NewState(NewSet("label:FE", "language:Rust"))

	s = s.HandleKey(KeyLeft)
	assert.Equal(t, "language:Rust", s.Focused)
	s = s.HandleKey(KeyLeft)
	assert.Equal(t, "label:FE", s.Focused)
	s = s.HandleKey(KeyRight)
	assert.Equal(t, "language:Rust", s.Focused)
	s = s.HandleKey(KeyRight)
	assert.False(t, s.HasFocus())

	drafting := NewState(NewSet("label:FE")).Type("x")
	assert.False(t, drafting.HandleKey(KeyLeft).HasFocus())
}

func TestEscapeClearsFocusAndClosesList(t *testing.T) {
	s := NewState(NewSet("label:FE")).FocusPrevious().Type("rust")
	require.True(t, s.SuggestionsVisible())

	s = s.HandleKey(KeyEscape)
	assert.False(t, s.HasFocus())
	assert.False(t, s.SuggestionsVisible())
	assert.Equal(t, "rust", s.Draft)
}

func TestEnterClosesWithoutCommitting(t *testing.T) {
	s := NewState(Set{}).Type("rust").HandleKey(KeyEnter)
	assert.False(t, s.Open)
	assert.Equal(t, 0, s.Set.Len())
	assert.Equal(t, PhaseTyping, s.Phase())
}

func TestArrowDownFocusesListWhenVisible(t *testing.T) {
	s := NewState(Set{}).Type("r")
	assert.False(t, s.HandleKey(KeyDown).ListFocused)

	s = s.Type("ru")
	assert.True(t, s.HandleKey(KeyDown).ListFocused)
	assert.True(t, s.HandleKey(KeyUp).ListFocused)
}

func TestSuggestionsNeedTwoCharacters(t *testing.T) {
	s := NewState(Set{})
	assert.False(t, s.Type("n").SuggestionsVisible())
	assert.True(t, s.Type("ne").SuggestionsVisible())
	assert.True(t, s.Type("né").SuggestionsVisible())
}

func TestPhases(t *testing.T) {
	assert.Equal(t, PhaseIdleEmpty, NewState(Set{}).Phase())
	assert.Equal(t, PhaseIdleWithTokens, NewState(NewSet("label:FE")).Phase())
	assert.Equal(t, PhaseTyping, NewState(Set{}).Type("n").Phase())
	assert.Equal(t, PhaseAutocompleteOpen, NewState(Set{}).Type("next").Phase())
	assert.Equal(t, PhaseTokenFocused, NewState(NewSet("label:FE")).FocusPrevious().Phase())
	assert.Equal(t, "autocomplete-open", PhaseAutocompleteOpen.String())
	assert.Equal(t, "Backspace", KeyBackspace.String())
}

func TestTypeSelectScenario(t *testing.T) {
	cat := catalog.Default()
	s := NewState(Set{}).Type("next")

	cands := s.Candidates(cat)
	require.Len(t, cands, 1)
	assert.Equal(t, "repo:vercel/next.js", cands[0].Token)
	assert.Equal(t, "vercel/next.js", cands[0].Value)
	assert.Equal(t, "repo", cands[0].Key)

	s = s.Select(cands[0])
	assert.Equal(t, []string{"repo:vercel/next.js"}, s.Set.Tokens())
	assert.Equal(t, "", s.Draft)
	assert.False(t, s.SuggestionsVisible())
}

func TestSelectMoreIsNoop(t *testing.T) {
	s := NewState(Set{}).Type("e")
	got := s.Select(Candidate{Value: MoreLabel, More: true})
	assert.Equal(t, s, got)
}
