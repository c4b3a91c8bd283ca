// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fetcher

import (
	"context"
	"log/slog"
	"sync"

	"github.com/catchupdays/wishlist/filter"
	"github.com/catchupdays/wishlist/models"
)

// Result is the outcome of one request, tagged with the key it was made for.
type Result struct {
	Key   string
	Items []models.WishlistItem
	Err   error
}

// Snapshot is what a view renders.
type Snapshot struct {
	Key     string
	Loading bool
	Items   []models.WishlistItem
	Err     error
}

// Tracker remembers the latest requested key and accepts only results for
// it. Older responses arriving late are dropped.
type Tracker struct {
	mu      sync.Mutex
	started bool
	key     string
	loading bool
	items   []models.WishlistItem
	err     error
}

// Begin records a request for set. It returns the key and false when that
// key is already the latest one, in which case no request is needed.
func (t *Tracker) Begin(s filter.Set) (string, bool) {
	key := Key(s)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started && key == t.key {
		return key, false
	}
	t.started = true
	t.key = key
	t.loading = true
	t.err = nil
	return key, true
}

// Apply stores r if it belongs to the latest key and reports whether it did.
func (t *Tracker) Apply(r Result) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started || r.Key != t.key {
		return false
	}
	t.loading = false
	if r.Err != nil {
		t.err = r.Err
		t.items = nil
		return true
	}
	t.err = nil
	t.items = r.Items
	return true
}

// Snapshot returns the current view state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{Key: t.key, Loading: t.loading, Items: t.items, Err: t.err}
}

// Lister is satisfied by *Client.
type Lister interface {
	List(ctx context.Context, s filter.Set) ([]models.WishlistItem, error)
}

// Fetcher issues keyed requests in the background.
type Fetcher struct {
	lister  Lister
	tracker *Tracker
	wg      sync.WaitGroup
}

// New returns a Fetcher backed by lister.
func New(lister Lister) *Fetcher {
	return &Fetcher{lister: lister, tracker: &Tracker{}}
}

// Tracker exposes the state shared with views.
func (f *Fetcher) Tracker() *Tracker {
	return f.tracker
}

// Fetch starts a request for set unless its key is already current. done is
// called with results the tracker accepted; stale ones are logged and
// dropped. It returns whether a request was started.
func (f *Fetcher) Fetch(ctx context.Context, s filter.Set, done func(Result)) bool {
	key, ok := f.tracker.Begin(s)
	if !ok {
		return false
	}

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()

		items, err := f.lister.List(ctx, s)
		r := Result{Key: key, Items: items, Err: err}
		if !f.tracker.Apply(r) {
			slog.Debug("discarding stale wishlist result", "filters", s.String())
			return
		}
		if done != nil {
			done(r)
		}
	}()
	return true
}

// Wait blocks until every started request has finished.
func (f *Fetcher) Wait() {
	f.wg.Wait()
}
