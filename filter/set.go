// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import "strings"

// Split breaks a token into its group key and value at the first ':'.
// A token without ':' is returned whole as the key with an empty value.
func Split(token string) (key, value string) {
	key, value, _ = strings.Cut(token, ":")
	return key, value
}

// Join builds a token from a group key and a value.
func Join(key, value string) string {
	return key + ":" + value
}

// Set is an insertion-ordered set of tokens. The zero value is an empty set.
// A Set is never modified in place; every operation returns a new Set.
// Tokens without ':' are stored as "token:" so they survive a query string.
type Set struct {
	tokens []string
}

// NewSet builds a set from tokens, keeping the first occurrence of each.
func NewSet(tokens ...string) Set {
	var s Set
	for _, t := range tokens {
		s = s.Add(t)
	}
	return s
}

// Len returns the number of tokens.
func (s Set) Len() int {
	return len(s.tokens)
}

// Tokens returns the tokens in insertion order.
func (s Set) Tokens() []string {
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Index returns the position of token, or -1.
func (s Set) Index(token string) int {
	token = canonical(token)
	for i, t := range s.tokens {
		if t == token {
			return i
		}
	}
	return -1
}

// Has reports whether token is in the set.
func (s Set) Has(token string) bool {
	return s.Index(token) >= 0
}

// At returns the token at position i. ok is false when i is out of range.
func (s Set) At(i int) (string, bool) {
	if i < 0 || i >= len(s.tokens) {
		return "", false
	}
	return s.tokens[i], true
}

// Add inserts token at the end if absent. The empty token is ignored.
func (s Set) Add(token string) Set {
	if token == "" || s.Has(token) {
		return s
	}
	token = canonical(token)
	out := make([]string, len(s.tokens), len(s.tokens)+1)
	copy(out, s.tokens)
	return Set{tokens: append(out, token)}
}

func canonical(token string) string {
	if token != "" && !strings.Contains(token, ":") {
		return token + ":"
	}
	return token
}

// Remove deletes token if present.
func (s Set) Remove(token string) Set {
	i := s.Index(token)
	if i < 0 {
		return s
	}
	out := make([]string, 0, len(s.tokens)-1)
	out = append(out, s.tokens[:i]...)
	out = append(out, s.tokens[i+1:]...)
	return Set{tokens: out}
}

// Group returns the active tokens whose key is key, in set order.
func (s Set) Group(key string) []string {
	prefix := key + ":"
	var out []string
	for _, t := range s.tokens {
		if strings.HasPrefix(t, prefix) {
			out = append(out, t)
		}
	}
	return out
}

// ReplaceGroup makes tokens the complete selection for group key. Active
// tokens of the group missing from tokens are removed, then tokens not yet
// active are appended. Tokens of other groups keep their positions.
func (s Set) ReplaceGroup(key string, tokens []string) Set {
	want := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		want[t] = true
	}

	prefix := key + ":"
	out := s
	for _, t := range s.tokens {
		if strings.HasPrefix(t, prefix) && !want[t] {
			out = out.Remove(t)
		}
	}
	for _, t := range tokens {
		out = out.Add(t)
	}
	return out
}

// Equal reports whether both sets hold the same tokens, ignoring order.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, t := range s.tokens {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

// String joins the tokens with ", " for logs.
func (s Set) String() string {
	return strings.Join(s.tokens, ", ")
}
