// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package landing

import (
	"github.com/careerdesk/careerdesk/internal/protocol"
	"github.com/careerdesk/careerdesk/internal/tui/components/toast"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case protocol.ErrorEvent:
		switch msg.Op {
		case protocol.OpLogin, protocol.OpLoadSession, protocol.OpLogout:
			return m.ShowError(msg.Message)
		}
		return m, nil

	case toast.ExpiredMsg:
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	if m.submitting {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.submit()
	}

	return m, cmd
}

// submit sends the bound credentials to the orchestrator
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.submitting = true
	creds := *m.credentials

	getLog().Info().Str("email", creds.Email).Str("role", string(creds.Role)).Msg("Sending LoginCommand")

	cmdChan := m.cmdChan
	go func() {
		cmdChan <- protocol.LoginCommand{
			Metadata: protocol.NewMetadata(),
			Email:    creds.Email,
			Password: creds.Password,
			Role:     creds.Role,
		}
	}()
	return m, nil
}

// ShowError shows text as an error notification and makes the form editable again.
func (m Model) ShowError(text string) (tea.Model, tea.Cmd) {
	m.submitting = false
	m.initForm()
	m.SetSize(m.width, m.height)

	var toastCmd tea.Cmd
	m.toast, toastCmd = m.toast.Error(text)
	return m, tea.Batch(toastCmd, m.form.Init())
}
