// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package urlsync

import (
	"net/url"

	"github.com/catchupdays/wishlist/filter"
)

// History replaces the query string of the current location without adding
// a history entry or reloading.
type History interface {
	ReplaceQuery(rawQuery string)
}

// Sync keeps a History's query string in step with a filter set. The query
// is read once, by Mount; afterwards the set only flows outward.
type Sync struct {
	history History
	initial filter.Set
	written string
}

// Mount reads rawQuery into the initial set. Nothing is written back until
// the first call to Write.
func Mount(h History, rawQuery string) *Sync {
	initial := Decode(rawQuery)
	return &Sync{
		history: h,
		initial: initial,
		written: Encode(initial),
	}
}

// Initial returns the set read at mount time.
func (s *Sync) Initial() filter.Set {
	return s.initial
}

// Write rebuilds the query from set and replaces the location's query when
// it differs from the last one written. It reports whether it wrote.
func (s *Sync) Write(set filter.Set) bool {
	q := Encode(set)
	if q == s.written {
		return false
	}
	s.written = q
	s.history.ReplaceQuery(q)
	return true
}

// Query returns the query string last written (or read at mount).
func (s *Sync) Query() string {
	return s.written
}

// Location is an in-memory History for a single URL.
type Location struct {
	u url.URL
	// Replacements counts ReplaceQuery calls.
	Replacements int
}

// NewLocation parses rawURL into a Location.
func NewLocation(rawURL string) (*Location, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	return &Location{u: *u}, nil
}

// ReplaceQuery swaps the query string in place.
func (l *Location) ReplaceQuery(rawQuery string) {
	l.u.RawQuery = rawQuery
	l.Replacements++
}

// RawQuery returns the current query string.
func (l *Location) RawQuery() string {
	return l.u.RawQuery
}

// String returns the full URL.
func (l *Location) String() string {
	return l.u.String()
}
