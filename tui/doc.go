// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tui is a terminal wishlist browser built on bubbletea. It drives a
// filter.State from key presses, mirrors the set into a urlsync.Location and
// lists the server's results for the current set, dropping responses that
// arrive after the set has moved on.
package tui
