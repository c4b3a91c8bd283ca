// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catchupdays/wishlist/catalog"
	"github.com/catchupdays/wishlist/fetcher"
	"github.com/catchupdays/wishlist/filter"
	"github.com/catchupdays/wishlist/models"
	"github.com/catchupdays/wishlist/urlsync"
)

// stubLister answers every request with the same items or error and records
// the sets it was asked for.
type stubLister struct {
	items []models.WishlistItem
	err   error
	calls []string
}

func (s *stubLister) List(_ context.Context, set filter.Set) ([]models.WishlistItem, error) {
	s.calls = append(s.calls, set.String())
	return s.items, s.err
}

func newTestModel(t *testing.T, rawURL string, lister fetcher.Lister) (Model, *urlsync.Location) {
	t.Helper()
	loc, err := urlsync.NewLocation(rawURL)
	require.NoError(t, err)
	m := NewModel(catalog.Default(), lister, loc)
	m.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return m, loc
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func TestNewModelReadsQueryOnce(t *testing.T) {
	m, loc := newTestModel(t, "http://localhost:3318/wishlist?language=Rust&label=FE", &stubLister{})

	assert.Equal(t, []string{"language:Rust", "label:FE"}, m.State().Set.Tokens())
	assert.Equal(t, 0, loc.Replacements)
}

func TestInitFetchesInitialSet(t *testing.T) {
	lister := &stubLister{items: []models.WishlistItem{{ID: "1", Title: "Faster builds"}}}
	m, _ := newTestModel(t, "http://localhost/wishlist?language=Rust", lister)

	cmd := m.Init()
	assert.True(t, m.Snapshot().Loading)

	m = run(t, m, cmd)
	snap := m.Snapshot()
	assert.False(t, snap.Loading)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Faster builds", snap.Items[0].Title)
	assert.Equal(t, []string{"language:Rust"}, lister.calls)
}

func TestTypeSelectWritesURL(t *testing.T) {
	lister := &stubLister{}
	m, loc := newTestModel(t, "http://localhost/wishlist", lister)
	m = run(t, m, m.Init())

	m, cmd := press(t, m, typeText("t"), typeText("y"))
	assert.Nil(t, cmd, "typing alone does not refetch")
	assert.Equal(t, filter.PhaseAutocompleteOpen, m.State().Phase())

	m, _ = press(t, m, key(tea.KeyDown))
	assert.True(t, m.State().ListFocused)

	m, cmd = press(t, m, key(tea.KeyEnter))
	assert.Equal(t, []string{"language:TypeScript"}, m.State().Set.Tokens())
	assert.Empty(t, m.State().Draft)
	assert.False(t, m.State().Open)
	assert.Equal(t, "language=TypeScript", loc.RawQuery())
	assert.Equal(t, 1, loc.Replacements)
	assert.Equal(t, "http://localhost/wishlist?language=TypeScript", m.URL())

	m = run(t, m, cmd)
	assert.Equal(t, []string{"", "language:TypeScript"}, lister.calls)
}

func TestSuggestionCursor(t *testing.T) {
	m, _ := newTestModel(t, "http://localhost/wishlist", &stubLister{})

	// "script" matches JavaScript then TypeScript
	m, _ = press(t, m, typeText("script"), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown))
	assert.Equal(t, 1, m.cursor, "cursor stops at the last suggestion")

	m, _ = press(t, m, key(tea.KeyUp), key(tea.KeyUp))
	assert.False(t, m.State().ListFocused, "up from the first suggestion leaves the list")

	m, _ = press(t, m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyEnter))
	assert.Equal(t, []string{"language:TypeScript"}, m.State().Set.Tokens())
}

func TestBackspaceFocusesThenDeletes(t *testing.T) {
	m, loc := newTestModel(t, "http://localhost/wishlist?language=Rust&label=FE", &stubLister{})

	m, cmd := press(t, m, key(tea.KeyBackspace))
	assert.Equal(t, "label:FE", m.State().Focused)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, loc.Replacements)

	m, cmd = press(t, m, key(tea.KeyBackspace))
	assert.Equal(t, []string{"language:Rust"}, m.State().Set.Tokens())
	assert.False(t, m.State().HasFocus())
	assert.NotNil(t, cmd)
	assert.Equal(t, "language=Rust", loc.RawQuery())
}

func TestBackspaceEditsDraftFirst(t *testing.T) {
	m, _ := newTestModel(t, "http://localhost/wishlist?language=Rust", &stubLister{})

	m, _ = press(t, m, typeText("ré"), key(tea.KeyBackspace))
	assert.Equal(t, "r", m.State().Draft)
	assert.Equal(t, 1, m.State().Set.Len())
}

func TestArrowsMoveFocus(t *testing.T) {
	m, _ := newTestModel(t, "http://localhost/wishlist?language=Rust&label=FE", &stubLister{})

	m, _ = press(t, m, key(tea.KeyLeft), key(tea.KeyLeft))
	assert.Equal(t, "language:Rust", m.State().Focused)

	m, _ = press(t, m, key(tea.KeyRight), key(tea.KeyRight))
	assert.False(t, m.State().HasFocus())
}

func TestStaleResultDropped(t *testing.T) {
	m, _ := newTestModel(t, "http://localhost/wishlist?language=Rust", &stubLister{})
	_ = m.Init()
	staleKey := fetcher.Key(m.State().Set)

	// Change the set before the first response arrives.
	m, _ = press(t, m, key(tea.KeyBackspace), key(tea.KeyBackspace))
	require.Equal(t, 0, m.State().Set.Len())

	next, _ := m.Update(ResultMsg{Key: staleKey, Items: []models.WishlistItem{{Title: "stale"}}})
	m = next.(Model)
	assert.True(t, m.Snapshot().Loading)
	assert.Empty(t, m.Snapshot().Items)
}

func TestErrorShownInline(t *testing.T) {
	m, _ := newTestModel(t, "http://localhost/wishlist", &stubLister{err: errors.New("connection refused")})
	m = run(t, m, m.Init())

	assert.Contains(t, m.View(), "Error: connection refused")
}

func TestViewRendersTagsAndCards(t *testing.T) {
	lister := &stubLister{items: []models.WishlistItem{{
		Title:         "Support ESM config files",
		RepositoryURL: "https://api.github.com/repos/webpack/webpack",
		User:          models.User{Login: "octocat"},
		CreatedAt:     time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		Reactions:     &models.Reactions{TotalCount: 3, Heart: 2, Rocket: 1},
	}}}
	m, _ := newTestModel(t, "http://localhost/wishlist?language=Rust&difficulty=easy", lister)
	m = run(t, m, m.Init())

	view := m.View()
	assert.Contains(t, view, "language: Rust")
	assert.Contains(t, view, "difficulty: easy ?")
	assert.Contains(t, view, "Support ESM config files")
	assert.Contains(t, view, "webpack/webpack")
	assert.Contains(t, view, "@octocat")
	assert.Contains(t, view, "1 day ago")
	assert.Contains(t, view, "http://localhost/wishlist?language=Rust&difficulty=easy")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "http://localhost/wishlist", &stubLister{})

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.Quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, colorBlue, ColorFor(catalog.ColorPrimary))
	assert.Equal(t, colorGreen, ColorFor(catalog.ColorSuccess))
	assert.Equal(t, colorOverlay0, ColorFor("chartreuse"))
}

func TestSetChangedComparesTokens(t *testing.T) {
	joined := filter.NewSet("label:a, label:b")
	split := filter.NewSet("label:a", "label:b")
	require.Equal(t, joined.String(), split.String())

	assert.True(t, setChanged(joined, split))
	assert.False(t, setChanged(split, filter.NewSet("label:a", "label:b")))
	assert.True(t, setChanged(split, filter.NewSet("label:b", "label:a")))
}
