// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"

	"github.com/catchupdays/wishlist/catalog"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorPeach    = lipgloss.Color(flavor.Peach().Hex)
)

// groupColors maps catalog display colors onto the palette.
var groupColors = map[string]lipgloss.Color{
	catalog.ColorPrimary:   colorBlue,
	catalog.ColorSecondary: colorMauve,
	catalog.ColorWarning:   colorYellow,
	catalog.ColorSuccess:   colorGreen,
	catalog.ColorNeutral:   colorOverlay0,
}

// ColorFor returns the palette color of a catalog color name. Unknown names
// fall back to the neutral color.
func ColorFor(name string) lipgloss.Color {
	if c, ok := groupColors[name]; ok {
		return c
	}
	return colorOverlay0
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	hintStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	dimStyle   = lipgloss.NewStyle().Foreground(colorOverlay0)
	errorStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	urlStyle   = lipgloss.NewStyle().Foreground(colorPeach)

	promptStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)

	suggestionStyle       = lipgloss.NewStyle().Foreground(colorText).PaddingLeft(2)
	activeSuggestionStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Background(colorSurface1).
				Bold(true).
				PaddingLeft(2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)
	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)
)

// tagStyle renders a token chip in its group color. A focused chip is
// inverted so it stands out for deletion.
func tagStyle(color string, focused bool) lipgloss.Style {
	c := ColorFor(color)
	s := lipgloss.NewStyle().Padding(0, 1).MarginRight(1)
	if focused {
		return s.Foreground(colorBase).Background(c).Bold(true)
	}
	return s.Foreground(c).Background(colorSurface1)
}
