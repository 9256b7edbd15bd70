// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package landing

import (
	"github.com/careerdesk/careerdesk/internal/tui/layout"
	"github.com/charmbracelet/lipgloss"
)

// View renders the landing screen
func (m Model) View() string {
	style := lipgloss.NewStyle().Padding(1, 2)

	intro := lipgloss.NewStyle().
		Foreground(layout.MutedColor).
		Margin(0, 0, 1, 0).
		Render("Log in to your account")

	content := style.Render(lipgloss.JoinVertical(lipgloss.Left, intro, m.form.View()))
	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}
