// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
	"time"
)

// Request types

// BanRequest toggles a banned URL. Delete=true unbans it.
type BanRequest struct {
	URL    string `json:"url"`
	Delete bool   `json:"delete"`
}

// Response types

type AutocompleteResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
	More        bool         `json:"more"`
}

type Suggestion struct {
	Token string `json:"token"`
	Key   string `json:"key"`
	Value string `json:"value"`
	Title string `json:"title"`
}

// Domain types

type User struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Reactions mirrors the reaction rollup of an issue. All counts are >= 0.
type Reactions struct {
	TotalCount int `json:"total_count" yaml:"total_count"`
	PlusOne    int `json:"+1" yaml:"+1"`
	MinusOne   int `json:"-1" yaml:"-1"`
	Laugh      int `json:"laugh" yaml:"laugh"`
	Hooray     int `json:"hooray" yaml:"hooray"`
	Confused   int `json:"confused" yaml:"confused"`
	Heart      int `json:"heart" yaml:"heart"`
	Rocket     int `json:"rocket" yaml:"rocket"`
	Eyes       int `json:"eyes" yaml:"eyes"`
}

// Total returns TotalCount, or the sum of the named counts when it is unset.
func (r Reactions) Total() int {
	if r.TotalCount > 0 {
		return r.TotalCount
	}
	return r.PlusOne + r.MinusOne + r.Laugh + r.Hooray + r.Confused + r.Heart + r.Rocket + r.Eyes
}

// Reaction is one named count, for display.
type Reaction struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// Breakdown lists the non-zero reactions shown on a card.
func (r Reactions) Breakdown() []Reaction {
	all := []Reaction{
		{"laugh", "😄", r.Laugh},
		{"hooray", "🎉", r.Hooray},
		{"confused", "😕", r.Confused},
		{"heart", "❤️", r.Heart},
		{"eyes", "👀", r.Eyes},
		{"rocket", "🚀", r.Rocket},
	}
	var out []Reaction
	for _, rc := range all {
		if rc.Count > 0 {
			out = append(out, rc)
		}
	}
	return out
}

// WishlistItem is one contribution opportunity.
type WishlistItem struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	RepositoryURL string     `json:"repository_url"`
	HTMLURL       string     `json:"html_url"`
	User          User       `json:"user"`
	CreatedAt     time.Time  `json:"created_at"`
	Reactions     *Reactions `json:"reactions,omitempty"`
	Attributes    []string   `json:"attributes,omitempty"`
}

// Repo returns "owner/name" from the last two segments of RepositoryURL.
func (it WishlistItem) Repo() string {
	parts := strings.Split(strings.TrimRight(it.RepositoryURL, "/"), "/")
	if len(parts) < 2 {
		return it.RepositoryURL
	}
	return strings.Join(parts[len(parts)-2:], "/")
}

type BannedEntry struct {
	URL       string    `json:"url"`
	BannedBy  string    `json:"banned_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
