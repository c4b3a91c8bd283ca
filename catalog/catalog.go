// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Display colors for attribute groups
const (
	ColorPrimary   = "primary"
	ColorSecondary = "secondary"
	ColorWarning   = "warning"
	ColorSuccess   = "success"
	ColorNeutral   = "neutral"
)

var (
	ErrEmptyGroup   = errors.New("attribute group has no items")
	ErrDuplicateKey = errors.New("duplicate attribute group key")
	ErrInvalidKey   = errors.New("invalid attribute group key")
	ErrUnknownColor = errors.New("unknown attribute group color")
	ErrEmptyCatalog = errors.New("catalog has no groups")
)

// Group is one filterable attribute category.
type Group struct {
	Name  string   `yaml:"name" json:"name"`
	Title string   `yaml:"title" json:"title"`
	Key   string   `yaml:"key" json:"key"`
	Items []string `yaml:"items" json:"items"`
	Color string   `yaml:"color" json:"color"`
}

// Token returns the "key:value" token for an item of this group.
func (g Group) Token(item string) string {
	return g.Key + ":" + item
}

// Has reports whether value is one of the group's items.
func (g Group) Has(value string) bool {
	for _, item := range g.Items {
		if item == value {
			return true
		}
	}
	return false
}

// Entry is a single selectable catalog value.
type Entry struct {
	Token string
	Key   string
	Value string
	Group Group
}

// Catalog is the ordered, immutable set of attribute groups.
type Catalog struct {
	groups []Group
	byKey  map[string]int
}

// New validates groups and builds a Catalog. The groups are copied.
func New(groups []Group) (*Catalog, error) {
	if len(groups) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		groups: make([]Group, 0, len(groups)),
		byKey:  make(map[string]int, len(groups)),
	}

	for _, g := range groups {
		if g.Key == "" || strings.ContainsAny(g.Key, ":&=") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, g.Key)
		}
		if _, dup := c.byKey[g.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, g.Key)
		}
		if len(g.Items) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyGroup, g.Key)
		}
		if g.Color == "" {
			g.Color = ColorNeutral
		}
		if !validColor(g.Color) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, g.Color)
		}
		if g.Title == "" {
			g.Title = g.Key
		}

		g.Items = append([]string(nil), g.Items...)
		c.byKey[g.Key] = len(c.groups)
		c.groups = append(c.groups, g)
	}

	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultGroups)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultGroups = []Group{
	{
		Name:  "repos",
		Title: "Repository",
		Key:   "repo",
		Items: []string{"webpack/webpack", "vercel/next.js"},
		Color: ColorPrimary,
	},
	{
		Name:  "libraries",
		Title: "Libraries",
		Key:   "library",
		Items: []string{"React", "Vue"},
		Color: ColorSecondary,
	},
	{
		Name:  "labels",
		Title: "Labels",
		Key:   "label",
		Items: []string{"FE", "BE"},
		Color: ColorWarning,
	},
	{
		Name:  "languages",
		Title: "Language",
		Key:   "language",
		Items: []string{"JavaScript", "TypeScript", "GoLang", "Rust"},
		Color: ColorSuccess,
	},
}

// file is the on-disk YAML layout.
type file struct {
	Groups []Group `yaml:"groups"`
}

// Parse reads a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Groups)
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Groups returns the groups in catalog order.
func (c *Catalog) Groups() []Group {
	out := make([]Group, len(c.groups))
	copy(out, c.groups)
	return out
}

// Group looks up a group by key.
func (c *Catalog) Group(key string) (Group, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Group{}, false
	}
	return c.groups[i], true
}

// Entries flattens the catalog into tokens, group by group.
func (c *Catalog) Entries() []Entry {
	var out []Entry
	for _, g := range c.groups {
		for _, item := range g.Items {
			out = append(out, Entry{
				Token: g.Token(item),
				Key:   g.Key,
				Value: item,
				Group: g,
			})
		}
	}
	return out
}

// Lookup resolves a "key:value" token. ok is false when the key is not a
// group key or the value is not one of the group's items.
func (c *Catalog) Lookup(token string) (Entry, bool) {
	key, value, found := strings.Cut(token, ":")
	if !found {
		return Entry{}, false
	}
	g, ok := c.Group(key)
	if !ok || !g.Has(value) {
		return Entry{}, false
	}
	return Entry{Token: token, Key: key, Value: value, Group: g}, true
}

func validColor(color string) bool {
	switch color {
	case ColorPrimary, ColorSecondary, ColorWarning, ColorSuccess, ColorNeutral:
		return true
	}
	return false
}
