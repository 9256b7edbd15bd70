// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package card

import (
	"github.com/charmbracelet/lipgloss"
)

// Style defines the visual appearance of a card
type Style struct {
	BorderColor lipgloss.Color
	BorderStyle lipgloss.Border
	Padding     []int // [top, right, bottom, left]
	Margin      []int // [top, right, bottom, left]
	TitleColor  lipgloss.Color
	TitleBold   bool
	Width       int // 0 = auto
}

// DefaultStyle returns the style used for application rows
func DefaultStyle() Style {
	return Style{
		BorderColor: lipgloss.Color("240"),
		BorderStyle: lipgloss.RoundedBorder(),
		Padding:     []int{0, 1, 0, 1},
		Margin:      []int{0, 0, 1, 0},
		TitleColor:  lipgloss.Color("86"),
		TitleBold:   true,
	}
}

// SelectedStyle highlights the row under the cursor
func SelectedStyle() Style {
	s := DefaultStyle()
	s.BorderColor = lipgloss.Color("#7C3AED")
	s.BorderStyle = lipgloss.ThickBorder()
	s.TitleColor = lipgloss.Color("#A78BFA")
	return s
}

// Render creates a bordered card with optional title
func Render(title, content string, style Style) string {
	body := content
	if title != "" {
		titleRendered := lipgloss.NewStyle().
			Foreground(style.TitleColor).
			Bold(style.TitleBold).
			Render(title)
		body = lipgloss.JoinVertical(lipgloss.Left, titleRendered, content)
	}

	boxStyle := lipgloss.NewStyle().
		Border(style.BorderStyle).
		BorderForeground(style.BorderColor)
	if len(style.Padding) == 4 {
		boxStyle = boxStyle.Padding(style.Padding[0], style.Padding[1], style.Padding[2], style.Padding[3])
	}
	if style.Width > 0 {
		// Width excludes the border
		boxStyle = boxStyle.Width(style.Width - boxStyle.GetHorizontalBorderSize())
	}
	if len(style.Margin) == 4 {
		boxStyle = boxStyle.Margin(style.Margin[0], style.Margin[1], style.Margin[2], style.Margin[3])
	}

	return boxStyle.Render(body)
}
