// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package applications

import (
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/protocol"
	"github.com/careerdesk/careerdesk/internal/tui/components/toast"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	CopiedMessage     = "Resume url copied"
	CopyFailedMessage = "Failed to copy resume url"
)

// clipboardResultMsg reports the outcome of a copy started from the modal
type clipboardResultMsg struct {
	err error
}

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case protocol.ApplicationsLoadedEvent:
		// A late response for a view the user no longer has is dropped
		if !m.session.Authorized || msg.View != m.view {
			getLog().Debug().Str("view", msg.View.String()).Msg("Ignoring applications for inactive view")
			return m, nil
		}
		m.applications = msg.Applications
		m.loading = false
		m.clampCursor()
		m.syncViewport()
		return m, nil

	case protocol.ApplicationDeletedEvent:
		m.applications = lo.Filter(m.applications, func(app models.Application, _ int) bool {
			return app.ID != msg.ApplicationID
		})
		m.clampCursor()
		m.syncViewport()
		return m.notify(toast.Success, msg.Message)

	case protocol.ErrorEvent:
		switch msg.Op {
		case protocol.OpLoadApplications:
			m.loading = false
			m.syncViewport()
			return m.notify(toast.Error, msg.Message)
		case protocol.OpDeleteApplication:
			return m.notify(toast.Error, msg.Message)
		}
		return m, nil

	case clipboardResultMsg:
		if msg.err != nil {
			getLog().Warn().Err(msg.err).Msg("Clipboard write failed")
			return m.notify(toast.Error, CopyFailedMessage)
		}
		return m.notify(toast.Success, CopiedMessage)

	case toast.ExpiredMsg:
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// The modal traps input until it is closed
	if m.modal.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.modal = m.modal.Close()
		case key.Matches(msg, m.keys.Copy):
			url, copyURL := m.modal.URL(), m.copyURL
			return m, func() tea.Msg {
				return clipboardResultMsg{err: copyURL(url)}
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.syncViewport()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.applications)-1 {
			m.cursor++
			m.syncViewport()
		}

	case key.Matches(msg, m.keys.Open):
		if app, ok := m.selected(); ok {
			m.modal = m.modal.Open(app.Resume.URL)
		}

	case key.Matches(msg, m.keys.Delete):
		if !m.view.CanDelete() {
			return m, nil
		}
		if app, ok := m.selected(); ok {
			getLog().Info().Str("application_id", app.ID).Msg("Deleting application")
			m.send(protocol.DeleteApplicationCommand{Metadata: protocol.NewMetadata(), ApplicationID: app.ID})
		}

	case key.Matches(msg, m.keys.Logout):
		m.send(protocol.LogoutCommand{Metadata: protocol.NewMetadata()})
	}

	return m, nil
}

func (m Model) notify(kind toast.Kind, text string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toast, cmd = m.toast.Show(kind, text)
	m.syncViewport()
	return m, cmd
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.applications) {
		m.cursor = len(m.applications) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
