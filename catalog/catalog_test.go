// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	groups := c.Groups()
	require.Len(t, groups, 4)

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	assert.Equal(t, []string{"repo", "library", "label", "language"}, keys)

	repo, ok := c.Group("repo")
	require.True(t, ok)
	assert.Equal(t, "Repository", repo.Title)
	assert.Equal(t, ColorPrimary, repo.Color)
	assert.Equal(t, []string{"webpack/webpack", "vercel/next.js"}, repo.Items)
}

func TestEntries(t *testing.T) {
	entries := Default().Entries()
	require.Len(t, entries, 10)
	assert.Equal(t, "repo:webpack/webpack", entries[0].Token)
	assert.Equal(t, "language:Rust", entries[len(entries)-1].Token)
	assert.Equal(t, "Language", entries[len(entries)-1].Group.Title)
}

func TestLookup(t *testing.T) {
	c := Default()

	tests := []struct {
		token string
		ok    bool
		key   string
		value string
	}{
		{"repo:vercel/next.js", true, "repo", "vercel/next.js"},
		{"language:Rust", true, "language", "Rust"},
		{"language:COBOL", false, "", ""},
		{"topic:FE", false, "", ""},
		{"noseparator", false, "", ""},
		{"", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			e, ok := c.Lookup(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, e.Key)
			assert.Equal(t, tt.value, e.Value)
		})
	}
}

func TestGroupsReturnsCopy(t *testing.T) {
	c := Default()
	groups := c.Groups()
	groups[0].Key = "mutated"

	_, ok := c.Group("repo")
	assert.True(t, ok)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		groups []Group
		err    error
	}{
		{"empty catalog", nil, ErrEmptyCatalog},
		{"empty key", []Group{{Key: "", Items: []string{"a"}}}, ErrInvalidKey},
		{"key with colon", []Group{{Key: "a:b", Items: []string{"a"}}}, ErrInvalidKey},
		{"no items", []Group{{Key: "repo"}}, ErrEmptyGroup},
		{"bad color", []Group{{Key: "repo", Items: []string{"a"}, Color: "mauve"}}, ErrUnknownColor},
		{"duplicate", []Group{
			{Key: "repo", Items: []string{"a"}},
			{Key: "repo", Items: []string{"b"}},
		}, ErrDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.groups)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New([]Group{{Key: "topic", Items: []string{"docs"}}})
	require.NoError(t, err)

	g, ok := c.Group("topic")
	require.True(t, ok)
	assert.Equal(t, "topic", g.Title)
	assert.Equal(t, ColorNeutral, g.Color)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte(`groups:
  - name: repos
    title: Repository
    key: repo
    color: primary
    items: [golang/go]
  - name: labels
    title: Labels
    key: label
    color: warning
    items: [good-first-issue, help-wanted]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	e, ok := c.Lookup("label:help-wanted")
	require.True(t, ok)
	assert.Equal(t, "Labels", e.Group.Title)
	assert.Len(t, c.Entries(), 3)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("groups: ["))
	assert.Error(t, err)

	_, err = Parse([]byte("groups: []"))
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}
