// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

// Key is a keyboard key the tag input reacts to.
type Key int

const (
	KeyBackspace Key = iota
	KeyLeft
	KeyRight
	KeyEscape
	KeyEnter
	KeyDown
	KeyUp
)

func (k Key) String() string {
	switch k {
	case KeyBackspace:
		return "Backspace"
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyDown:
		return "ArrowDown"
	case KeyUp:
		return "ArrowUp"
	}
	return "Unknown"
}

// Phase is the observable state of the tag input.
type Phase int

const (
	PhaseIdleEmpty Phase = iota
	PhaseIdleWithTokens
	PhaseTyping
	PhaseAutocompleteOpen
	PhaseTokenFocused
)

func (p Phase) String() string {
	switch p {
	case PhaseIdleEmpty:
		return "idle-empty"
	case PhaseIdleWithTokens:
		return "idle-with-tokens"
	case PhaseTyping:
		return "typing"
	case PhaseAutocompleteOpen:
		return "autocomplete-open"
	case PhaseTokenFocused:
		return "token-focused"
	}
	return "unknown"
}

// Phase derives the dominant phase. A focused token wins over an open list,
// which wins over plain typing.
func (s State) Phase() Phase {
	switch {
	case s.HasFocus():
		return PhaseTokenFocused
	case s.SuggestionsVisible():
		return PhaseAutocompleteOpen
	case s.Draft != "":
		return PhaseTyping
	case s.Set.Len() > 0:
		return PhaseIdleWithTokens
	}
	return PhaseIdleEmpty
}

// Type replaces the draft text and opens the suggestion list.
func (s State) Type(draft string) State {
	s.Draft = draft
	s.Open = true
	s.ListFocused = false
	return s
}

// HandleKey applies one key press. Text editing keys are not handled here:
// callers edit the draft and pass the result to Type.
func (s State) HandleKey(k Key) State {
	switch k {
	case KeyBackspace:
		if s.Draft != "" || s.Set.Len() == 0 {
			return s
		}
		if s.HasFocus() {
			return s.DeleteFocused()
		}
		return s.FocusPrevious()
	case KeyLeft:
		if s.Draft == "" {
			return s.FocusPrevious()
		}
	case KeyRight:
		if s.Draft == "" {
			return s.FocusNext()
		}
	case KeyEscape:
		s = s.Defocus()
		s.Open = false
		s.ListFocused = false
	case KeyEnter:
		s.Open = false
		s.ListFocused = false
	case KeyDown, KeyUp:
		if s.SuggestionsVisible() {
			s.ListFocused = true
		}
	}
	return s
}

// Select commits a suggestion: the token is added, the draft cleared and the
// list closed. The "and more" entry selects nothing.
func (s State) Select(c Candidate) State {
	if c.More || c.Token == "" {
		return s
	}
	s = s.Add(c.Token)
	s.Draft = ""
	s.Open = false
	s.ListFocused = false
	return s
}
