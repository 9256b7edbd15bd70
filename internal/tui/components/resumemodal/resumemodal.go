// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package resumemodal

import (
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/tui/components/card"
	"github.com/charmbracelet/lipgloss"
)

// State of the modal
type State int

const (
	Closed State = iota
	Open
)

// Model previews a resume URL. The URL survives Close but is only shown while open.
type Model struct {
	state State
	url   string
}

// New returns a closed modal.
func New() Model {
	return Model{state: Closed}
}

// Open records url and shows the modal. The url is not validated.
func (m Model) Open(url string) Model {
	m.url = url
	m.state = Open
	return m
}

// Close hides the modal.
func (m Model) Close() Model {
	m.state = Closed
	return m
}

func (m Model) IsOpen() bool {
	return m.state == Open
}

func (m Model) State() State {
	return m.state
}

// URL returns the last opened url.
func (m Model) URL() string {
	return m.url
}

// View renders the modal centered in width x height, or "" when closed.
func (m Model) View(width, height int) string {
	if m.state != Open {
		return ""
	}

	kind := "Image"
	if models.IsPDF(m.url) {
		kind = "PDF document"
	}

	boxWidth := width - 8
	if boxWidth > 80 {
		boxWidth = 80
	}
	if boxWidth < 20 {
		boxWidth = 20
	}

	url := m.url
	if url == "" {
		url = lipgloss.NewStyle().Italic(true).Render("(no resume url)")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(kind),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Underline(true).Render(url),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("[y] copy url • [esc] close"),
	)

	style := card.DefaultStyle()
	style.BorderColor = lipgloss.Color("#7C3AED")
	style.BorderStyle = lipgloss.DoubleBorder()
	style.Width = boxWidth
	style.Margin = []int{0, 0, 0, 0}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card.Render("Resume", body, style))
}
