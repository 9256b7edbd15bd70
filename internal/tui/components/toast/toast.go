// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toast renders a single transient notification that hides itself
// after a kind-specific duration.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Kind is the flavour of a notification
type Kind int

const (
	Success Kind = iota
	Error
)

// Default display durations.
const (
	DefaultSuccessDuration = 2 * time.Second
	DefaultErrorDuration   = 4 * time.Second
)

// ExpiredMsg hides the toast it was scheduled for. A newer toast ignores it.
type ExpiredMsg struct {
	ID int
}

// Model holds the current notification
type Model struct {
	text            string
	kind            Kind
	id              int
	visible         bool
	successDuration time.Duration
	errorDuration   time.Duration
}

// New creates a toast with the given durations; non-positive values fall back to the defaults.
func New(successDuration, errorDuration time.Duration) Model {
	if successDuration <= 0 {
		successDuration = DefaultSuccessDuration
	}
	if errorDuration <= 0 {
		errorDuration = DefaultErrorDuration
	}
	return Model{successDuration: successDuration, errorDuration: errorDuration}
}

// Show replaces the current notification and schedules its expiry.
func (m Model) Show(kind Kind, text string) (Model, tea.Cmd) {
	m.id++
	m.kind = kind
	m.text = text
	m.visible = true

	id := m.id
	return m, tea.Tick(m.Duration(kind), func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	})
}

// Success shows a success notification.
func (m Model) Success(text string) (Model, tea.Cmd) {
	return m.Show(Success, text)
}

// Error shows an error notification.
func (m Model) Error(text string) (Model, tea.Cmd) {
	return m.Show(Error, text)
}

// Duration returns how long a notification of kind stays visible.
func (m Model) Duration(kind Kind) time.Duration {
	if kind == Error {
		return m.errorDuration
	}
	return m.successDuration
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if expired, ok := msg.(ExpiredMsg); ok && expired.ID == m.id {
		m.visible = false
	}
	return m, nil
}

// Visible reports whether a notification is on screen.
func (m Model) Visible() bool {
	return m.visible
}

// Text returns the current notification text.
func (m Model) Text() string {
	return m.text
}

// Kind returns the current notification kind.
func (m Model) Kind() Kind {
	return m.kind
}

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// View renders "✓ text" or "✗ text", or nothing when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	if m.kind == Error {
		return errorStyle.Render("✗ " + m.text)
	}
	return successStyle.Render("✓ " + m.text)
}
