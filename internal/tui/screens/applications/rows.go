// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package applications

import (
	"strings"

	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/tui/components/card"
	"github.com/careerdesk/careerdesk/internal/tui/layout"
)

const (
	EmptyMessage       = "No Applications Found"
	DeleteActionLabel  = "Delete Application"
	ResumeImageLabel   = "▣ Resume Image"
	ResumeDocumentIcon = "▤ Resume PDF"
)

// rowRenderer draws a single application. Renderers are pure: the same
// application, selection and width always produce the same string.
type rowRenderer func(app models.Application, selected bool, width int) string

func rendererFor(view models.ViewKind) rowRenderer {
	if view == models.EmployerView {
		return renderEmployerRow
	}
	return renderSeekerRow
}

func renderSeekerRow(app models.Application, selected bool, width int) string {
	lines := detailLines(app)
	lines = append(lines,
		resumeLine(models.JobSeekerView, app.Resume.URL),
		layout.DangerStyle.Render("[d] "+DeleteActionLabel),
	)
	return renderCard(lines, selected, width)
}

func renderEmployerRow(app models.Application, selected bool, width int) string {
	lines := detailLines(app)
	lines = append(lines, resumeLine(models.EmployerView, app.Resume.URL))
	return renderCard(lines, selected, width)
}

func detailLines(app models.Application) []string {
	return []string{
		field("Name:", app.Name),
		field("Email:", app.Email),
		field("Phone:", app.Phone),
		field("Address:", app.Address),
		field("CoverLetter:", app.CoverLetter),
	}
}

func field(label, value string) string {
	return layout.LabelStyle.Render(label) + " " + layout.ValueStyle.Render(value)
}

// resumeLine shows the affordance the view picks for the url. Both open the modal.
func resumeLine(view models.ViewKind, url string) string {
	label := ResumeImageLabel
	if models.AffordanceFor(view, url) == models.ResumeDocumentIcon {
		label = ResumeDocumentIcon
	}
	return layout.LinkStyle.Render(label) + " " + layout.StatsStyle.Render("[enter] view")
}

func renderCard(lines []string, selected bool, width int) string {
	style := card.DefaultStyle()
	if selected {
		style = card.SelectedStyle()
	}
	style.Width = width
	return card.Render("", strings.Join(lines, "\n"), style)
}
