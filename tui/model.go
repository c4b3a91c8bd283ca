// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"context"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/catchupdays/wishlist/catalog"
	"github.com/catchupdays/wishlist/fetcher"
	"github.com/catchupdays/wishlist/filter"
	"github.com/catchupdays/wishlist/urlsync"
)

// RequestTimeout bounds one wishlist request.
const RequestTimeout = 10 * time.Second

// ResultMsg carries a finished wishlist request back into the update loop.
type ResultMsg fetcher.Result

// Model is the terminal wishlist browser: a tag input over the filter state,
// a URL kept in step with the set, and the results for the current set.
type Model struct {
	cat     *catalog.Catalog
	lister  fetcher.Lister
	tracker *fetcher.Tracker
	loc     *urlsync.Location
	sync    *urlsync.Sync

	state filter.State
	// cursor indexes the selectable suggestions while the list has focus.
	cursor int

	width    int
	now      func() time.Time
	Quitting bool
}

// NewModel mounts the browser on loc. The filter set is read from loc's
// query once; afterwards every change is written back to it.
func NewModel(cat *catalog.Catalog, lister fetcher.Lister, loc *urlsync.Location) Model {
	s := urlsync.Mount(loc, loc.RawQuery())
	return Model{
		cat:     cat,
		lister:  lister,
		tracker: &fetcher.Tracker{},
		loc:     loc,
		sync:    s,
		state:   filter.NewState(s.Initial()),
		width:   80,
		now:     time.Now,
	}
}

// State returns the current tag input state.
func (m Model) State() filter.State { return m.state }

// Snapshot returns the results view state.
func (m Model) Snapshot() fetcher.Snapshot { return m.tracker.Snapshot() }

// URL returns the browser's current location.
func (m Model) URL() string { return m.loc.String() }

func (m Model) Init() tea.Cmd {
	return m.fetch()
}

// fetch starts a request for the current set unless that set's key is
// already the latest requested.
func (m Model) fetch() tea.Cmd {
	key, ok := m.tracker.Begin(m.state.Set)
	if !ok {
		return nil
	}
	set, lister := m.state.Set, m.lister
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()
		items, err := lister.List(ctx, set)
		return ResultMsg{Key: key, Items: items, Err: err}
	}
}

// selectable returns the suggestions that can be committed, without the
// "and more..." entry.
func (m Model) selectable() []filter.Candidate {
	if !m.state.SuggestionsVisible() {
		return nil
	}
	var out []filter.Candidate
	for _, c := range m.state.Candidates(m.cat) {
		if !c.More {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case ResultMsg:
		m.tracker.Apply(fetcher.Result(msg))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		m.Quitting = true
		return m, tea.Quit
	}

	before := m.state.Set

	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(m.state.Draft); len(r) > 0 {
			m.state = m.state.Type(string(r[:len(r)-1]))
		} else {
			m.state = m.state.HandleKey(filter.KeyBackspace)
		}
	case tea.KeyLeft:
		m.state = m.state.HandleKey(filter.KeyLeft)
	case tea.KeyRight:
		m.state = m.state.HandleKey(filter.KeyRight)
	case tea.KeyEsc:
		m.state = m.state.HandleKey(filter.KeyEscape)
	case tea.KeyEnter:
		if opts := m.selectable(); m.state.ListFocused && m.cursor < len(opts) {
			m.state = m.state.Select(opts[m.cursor])
		} else {
			m.state = m.state.HandleKey(filter.KeyEnter)
		}
		m.cursor = 0
	case tea.KeyDown:
		if m.state.ListFocused {
			if m.cursor < len(m.selectable())-1 {
				m.cursor++
			}
		} else {
			m.state = m.state.HandleKey(filter.KeyDown)
			m.cursor = 0
		}
	case tea.KeyUp:
		if m.state.ListFocused && m.cursor > 0 {
			m.cursor--
		} else if m.state.ListFocused {
			m.state.ListFocused = false
		} else {
			m.state = m.state.HandleKey(filter.KeyUp)
			m.cursor = 0
		}
	case tea.KeyRunes, tea.KeySpace:
		m.state = m.state.Type(m.state.Draft + string(msg.Runes))
		m.cursor = 0
	}

	if !setChanged(before, m.state.Set) {
		return m, nil
	}
	m.sync.Write(m.state.Set)
	return m, m.fetch()
}

func setChanged(before, after filter.Set) bool {
	return !slices.Equal(before.Tokens(), after.Tokens())
}
