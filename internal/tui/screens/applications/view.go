// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package applications

import (
	"strings"

	"github.com/careerdesk/careerdesk/internal/tui/layout"
	"github.com/charmbracelet/lipgloss"
)

// View renders the applications screen
func (m Model) View() string {
	info := m.GetLayoutInfo()

	var content string
	if m.modal.IsOpen() {
		dims := layout.GetContentArea(info, m.width, m.height)
		content = m.modal.View(dims.Width, dims.Height)
	} else {
		content = m.viewport.View()
	}

	return layout.RenderLayout(content, info, m.width, m.height)
}

// renderRows draws every row and returns the content with the line span of each row
func (m Model) renderRows(width int) (string, [][2]int) {
	if len(m.applications) == 0 {
		if m.loading {
			return layout.EmptyStyle.Render("Loading applications..."), nil
		}
		return layout.EmptyStyle.Render(EmptyMessage), nil
	}

	render := rendererFor(m.view)
	rows := make([]string, 0, len(m.applications))
	spans := make([][2]int, 0, len(m.applications))
	line := 0
	for i, app := range m.applications {
		row := render(app, i == m.cursor, width)
		h := lipgloss.Height(row)
		spans = append(spans, [2]int{line, line + h})
		line += h
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n"), spans
}

// syncViewport re-renders the rows into the viewport and scrolls the selected row into view
func (m *Model) syncViewport() {
	dims := layout.GetContentArea(m.GetLayoutInfo(), m.width, m.height)
	if !dims.Valid {
		return
	}
	m.viewport.Width = dims.Width
	m.viewport.Height = dims.Height

	content, spans := m.renderRows(dims.Width)
	m.viewport.SetContent(content)
	if len(spans) == 0 {
		m.viewport.GotoTop()
		return
	}

	span := spans[m.cursor]
	switch {
	case span[0] < m.viewport.YOffset:
		m.viewport.SetYOffset(span[0])
	case span[1] > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(span[1] - m.viewport.Height)
	}
}
