// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		token, key, value string
	}{
		{"repo:vercel/next.js", "repo", "vercel/next.js"},
		{"label:a:b", "label", "a:b"},
		{"label:", "label", ""},
		{"bare", "bare", ""},
		{":x", "", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			key, value := Split(tt.token)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
		})
	}
	assert.Equal(t, "repo:webpack/webpack", Join("repo", "webpack/webpack"))
}

func TestSetAddKeepsInsertionOrder(t *testing.T) {
	s := NewSet("language:Rust", "label:FE", "language:Rust", "repo:webpack/webpack")
	assert.Equal(t, []string{"language:Rust", "label:FE", "repo:webpack/webpack"}, s.Tokens())
}

func TestSetAddIdempotent(t *testing.T) {
	base := NewSet("label:FE")
	once := base.Add("language:Rust")
	twice := once.Add("language:Rust")
	assert.Equal(t, once.Tokens(), twice.Tokens())
}

func TestSetAddIgnoresEmptyToken(t *testing.T) {
	assert.Equal(t, 0, Set{}.Add("").Len())
}

func TestSetAddRemoveRoundTrip(t *testing.T) {
	starts := []Set{
		{},
		NewSet("label:FE"),
		NewSet("repo:webpack/webpack", "language:Rust", "label:BE"),
	}
	tokens := []string{"repo:vercel/next.js", "library:Vue", "topic:unknown", "weird"}

	for _, s := range starts {
		for _, tok := range tokens {
			got := s.Add(tok).Remove(tok)
			assert.Equal(t, s.Tokens(), got.Tokens(), "start=%v token=%s", s, tok)
		}
	}
}

func TestSetRemoveIdempotent(t *testing.T) {
	s := NewSet("label:FE", "label:BE")
	once := s.Remove("label:FE")
	assert.Equal(t, once.Tokens(), once.Remove("label:FE").Tokens())
	assert.Equal(t, []string{"label:BE"}, once.Tokens())
}

func TestSetRemoveIsExact(t *testing.T) {
	s := NewSet("label:FE", "label:FEATURE")
	assert.Equal(t, []string{"label:FEATURE"}, s.Remove("label:FE").Tokens())
}

func TestSetIsImmutable(t *testing.T) {
	s := NewSet("label:FE")
	_ = s.Add("label:BE")
	_ = s.Remove("label:FE")
	assert.Equal(t, []string{"label:FE"}, s.Tokens())

	tokens := s.Tokens()
	tokens[0] = "mutated"
	assert.True(t, s.Has("label:FE"))
}

func TestReplaceGroup(t *testing.T) {
	tests := []struct {
		name   string
		start  []string
		key    string
		tokens []string
		want   []string
	}{
		{
			name:   "clear group",
			start:  []string{"language:Rust", "label:FE"},
			key:    "language",
			tokens: nil,
			want:   []string{"label:FE"},
		},
		{
			name:   "clear repo removes only repo tokens",
			start:  []string{"repo:a/b", "label:FE", "repo:c/d", "repository:x"},
			key:    "repo",
			tokens: []string{},
			want:   []string{"label:FE", "repository:x"},
		},
		{
			name:   "keep existing and add new",
			start:  []string{"language:Rust", "label:FE"},
			key:    "language",
			tokens: []string{"language:Rust", "language:GoLang"},
			want:   []string{"language:Rust", "label:FE", "language:GoLang"},
		},
		{
			name:   "swap selection",
			start:  []string{"language:Rust", "label:FE"},
			key:    "language",
			tokens: []string{"language:TypeScript"},
			want:   []string{"label:FE", "language:TypeScript"},
		},
		{
			name:   "empty start",
			start:  nil,
			key:    "label",
			tokens: []string{"label:BE", "label:FE"},
			want:   []string{"label:BE", "label:FE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSet(tt.start...).ReplaceGroup(tt.key, tt.tokens)
			assert.Equal(t, tt.want, got.Tokens())
		})
	}
}

func TestSetGroup(t *testing.T) {
	s := NewSet("repo:a/b", "label:FE", "repo:c/d")
	assert.Equal(t, []string{"repo:a/b", "repo:c/d"}, s.Group("repo"))
	assert.Nil(t, s.Group("language"))
}

func TestSetEqualIgnoresOrder(t *testing.T) {
	a := NewSet("label:FE", "repo:vercel/next.js")
	b := NewSet("repo:vercel/next.js", "label:FE")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(b.Add("label:BE")))
	assert.False(t, a.Equal(NewSet("label:FE", "label:BE")))
}

func TestSetAt(t *testing.T) {
	s := NewSet("a:1", "b:2")
	tok, ok := s.At(1)
	assert.True(t, ok)
	assert.Equal(t, "b:2", tok)

	_, ok = s.At(2)
	assert.False(t, ok)
	_, ok = s.At(-1)
	assert.False(t, ok)
}

func TestSetStoresBareTokenWithColon(t *testing.T) {
	s := NewSet("weird", "label:FE")
	assert.Equal(t, []string{"weird:", "label:FE"}, s.Tokens())
	assert.True(t, s.Has("weird"))
	assert.True(t, s.Has("weird:"))
	assert.Equal(t, s.Tokens(), s.Add("weird:").Tokens())
	assert.Equal(t, []string{"label:FE"}, s.Remove("weird").Tokens())
}
