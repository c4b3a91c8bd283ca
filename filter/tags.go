// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import "github.com/catchupdays/wishlist/catalog"

// Tag is the display form of one active token.
type Tag struct {
	Token   string
	Key     string
	Value   string
	Label   string // "key: value"
	Title   string
	Color   string
	Focused bool
	// Known is false for tokens not found in the catalog. They are shown with
	// their raw key and value and the neutral color.
	Known bool
}

// Tags renders the active set in order.
func (s State) Tags(cat *catalog.Catalog) []Tag {
	tags := make([]Tag, 0, s.Set.Len())
	for _, token := range s.Set.Tokens() {
		key, value := Split(token)
		tag := Tag{
			Token:   token,
			Key:     key,
			Value:   value,
			Label:   key + ": " + value,
			Title:   key,
			Color:   catalog.ColorNeutral,
			Focused: token == s.Focused,
		}
		if e, ok := cat.Lookup(token); ok {
			tag.Title = e.Group.Title
			tag.Color = e.Group.Color
			tag.Known = true
		}
		tags = append(tags, tag)
	}
	return tags
}

// Unknown returns the active tokens the catalog does not recognise.
func (s State) Unknown(cat *catalog.Catalog) []string {
	var out []string
	for _, token := range s.Set.Tokens() {
		if _, ok := cat.Lookup(token); !ok {
			out = append(out, token)
		}
	}
	return out
}

// Option is one item of a group selector.
type Option struct {
	Token    string
	Value    string
	Selected bool
}

// GroupView is a multi-select selector for one catalog group.
type GroupView struct {
	Group   catalog.Group
	Options []Option
	// Count is the number of active tokens that are items of the group.
	Count int
}

// Groups builds one selector per catalog group. A selector hands its full
// selection back through ReplaceGroup.
func (s State) Groups(cat *catalog.Catalog) []GroupView {
	groups := cat.Groups()
	views := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		v := GroupView{Group: g}
		for _, item := range g.Items {
			token := g.Token(item)
			selected := s.Set.Has(token)
			if selected {
				v.Count++
			}
			v.Options = append(v.Options, Option{Token: token, Value: item, Selected: selected})
		}
		views = append(views, v)
	}
	return views
}
