// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import "unicode/utf8"

// MinDraftLen is the draft length, in characters, at which suggestions show.
const MinDraftLen = 2

// State is the complete tag-input state. Methods never modify the receiver.
//
// Focused is either empty (no focus) or a token present in Set.
type State struct {
	Set     Set
	Focused string
	Draft   string

	// Open is set by typing and cleared by Escape, Enter and selection.
	Open bool
	// ListFocused means keyboard focus moved into the suggestion list.
	ListFocused bool
}

// NewState returns a state holding set with nothing focused.
func NewState(set Set) State {
	return State{Set: set}
}

// HasFocus reports whether a token is focused.
func (s State) HasFocus() bool {
	return s.Focused != ""
}

// SuggestionsVisible reports whether the suggestion list is shown.
func (s State) SuggestionsVisible() bool {
	return s.Open && utf8.RuneCountInString(s.Draft) >= MinDraftLen
}

// Add inserts token into the set.
func (s State) Add(token string) State {
	s.Set = s.Set.Add(token)
	return s
}

// Remove deletes token from the set, clearing focus if it was focused.
func (s State) Remove(token string) State {
	s.Set = s.Set.Remove(token)
	if s.Focused != "" && !s.Set.Has(s.Focused) {
		s.Focused = ""
	}
	return s
}

// ReplaceGroup sets the complete selection for one group.
func (s State) ReplaceGroup(key string, tokens []string) State {
	s.Set = s.Set.ReplaceGroup(key, tokens)
	if s.Focused != "" && !s.Set.Has(s.Focused) {
		s.Focused = ""
	}
	return s
}

// WithSet swaps in a new set, dropping focus if the focused token left.
func (s State) WithSet(set Set) State {
	s.Set = set
	if s.Focused != "" && !set.Has(s.Focused) {
		s.Focused = ""
	}
	return s
}

// FocusPrevious moves focus one token to the left. With nothing focused the
// last token is focused. Moving left from the first token clears focus.
func (s State) FocusPrevious() State {
	if s.Focused == "" {
		s.Focused, _ = s.Set.At(s.Set.Len() - 1)
		return s
	}
	s.Focused, _ = s.Set.At(s.Set.Index(s.Focused) - 1)
	return s
}

// FocusNext moves focus one token to the right. With nothing focused, or
// from the last token, focus is cleared.
func (s State) FocusNext() State {
	if s.Focused == "" {
		return s
	}
	s.Focused, _ = s.Set.At(s.Set.Index(s.Focused) + 1)
	return s
}

// Defocus clears focus.
func (s State) Defocus() State {
	s.Focused = ""
	return s
}

// DeleteFocused removes the focused token and clears focus.
func (s State) DeleteFocused() State {
	if s.Focused == "" {
		return s
	}
	return s.Remove(s.Focused)
}
