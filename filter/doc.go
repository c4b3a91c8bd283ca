// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package filter holds the wishlist filter state and the tag-input state
machine.

# Tokens and Sets

A token is "key:value", e.g. "repo:vercel/next.js". Split cuts at the first
':'. A Set keeps tokens unique and in insertion order; it is a value and
every operation returns a new Set:

	s := filter.NewSet("language:Rust", "label:FE")
	s = s.ReplaceGroup("language", nil) // {"label:FE"}

Tokens are never validated against the catalog here.

# State

State bundles the set, the focused token, the draft text and the suggestion
list flags. Focus moves between whole tokens:

	FocusPrevious  unfocused: last token; first token: no focus
	FocusNext      unfocused or last token: no focus
	DeleteFocused  remove the focused token, clear focus

Keys are routed with HandleKey. Backspace on an empty draft focuses the last
token first and deletes it on the second press.

# Suggestions

Candidates lists catalog values containing every word of the draft, minus
tokens already active, capped at MaxCandidates with a trailing "and more..."
entry that Select ignores.
*/
package filter
