// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/catchupdays/wishlist/filter"
	"github.com/catchupdays/wishlist/models"
)

// maxCards is how many results are drawn below the input.
const maxCards = 8

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("The Wishlist"))
	b.WriteString("  ")
	b.WriteString(urlStyle.Render(m.loc.String()))
	b.WriteString("\n\n")

	b.WriteString(m.renderInput())
	b.WriteString("\n")
	if list := m.renderSuggestions(); list != "" {
		b.WriteString(list)
	}
	b.WriteString("\n")
	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("type to search  ←/→ select tag  backspace delete  ↓ suggestions  enter add  esc close  ctrl+c quit"))
	return b.String()
}

func (m Model) renderInput() string {
	var parts []string
	for _, tag := range m.state.Tags(m.cat) {
		label := tag.Label
		if !tag.Known {
			label += " ?"
		}
		parts = append(parts, tagStyle(tag.Color, tag.Focused).Render(label))
	}
	parts = append(parts, promptStyle.Render("›")+" "+m.state.Draft+"▏")
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) renderSuggestions() string {
	if !m.state.SuggestionsVisible() {
		return ""
	}
	candidates := m.state.Candidates(m.cat)
	if len(candidates) == 0 {
		return dimStyle.Render("  no matching filters") + "\n"
	}

	var b strings.Builder
	for i, c := range candidates {
		if c.More {
			b.WriteString(dimStyle.Render("  "+filter.MoreLabel) + "\n")
			continue
		}
		line := c.Value + " " + dimStyle.Render(c.Title)
		if m.state.ListFocused && i == m.cursor {
			b.WriteString(activeSuggestionStyle.Render(line) + "\n")
		} else {
			b.WriteString(suggestionStyle.Render(line) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderResults() string {
	snap := m.tracker.Snapshot()
	switch {
	case snap.Loading:
		return dimStyle.Render("Loading...") + "\n"
	case snap.Err != nil:
		return errorStyle.Render("Error: "+snap.Err.Error()) + "\n"
	case len(snap.Items) == 0:
		return dimStyle.Render("No issues match these filters.") + "\n"
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for i, item := range snap.Items {
		if i == maxCards {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  and %s more", humanize.Comma(int64(len(snap.Items)-maxCards)))) + "\n")
			break
		}
		b.WriteString(cardStyle.Width(width).Render(m.renderCard(item)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCard(item models.WishlistItem) string {
	meta := []string{item.Repo(), "@" + item.User.Login, humanize.RelTime(item.CreatedAt, m.now(), "ago", "from now")}
	line := cardTitleStyle.Render(item.Title)
	if item.Reactions != nil && item.Reactions.Total() > 0 {
		var rs []string
		for _, r := range item.Reactions.Breakdown() {
			rs = append(rs, r.Emoji)
		}
		line += "  " + fmt.Sprintf("%d %s", item.Reactions.Total(), strings.Join(rs, ""))
	}
	return line + "\n" + hintStyle.Render(strings.Join(meta, " · "))
}
