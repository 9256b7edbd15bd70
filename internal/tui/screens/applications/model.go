// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package applications is the "My Applications" screen: it loads the
// applications visible to the signed-in user, lets job seekers delete theirs
// and previews resumes in a modal.
package applications

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/logger"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/protocol"
	"github.com/careerdesk/careerdesk/internal/session"
	"github.com/careerdesk/careerdesk/internal/tui/components/resumemodal"
	"github.com/careerdesk/careerdesk/internal/tui/components/toast"
	"github.com/careerdesk/careerdesk/internal/tui/layout"
	"github.com/careerdesk/careerdesk/internal/tui/messages"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Model is the model for the applications screen.
type Model struct {
	cmdChan  chan<- protocol.Command
	navigate messages.Navigator

	session session.Context
	active  bool // SetSession has been called at least once
	view    models.ViewKind

	applications []models.Application
	loading      bool
	cursor       int

	modal    resumemodal.Model
	toast    toast.Model
	viewport viewport.Model
	keys     keyMap

	copyURL func(string) error

	width  int
	height int
}

// NewModel creates the screen. Nothing is fetched until SetSession is called.
func NewModel(cmdChan chan<- protocol.Command, navigate messages.Navigator, ui config.UIConfig) Model {
	if navigate == nil {
		navigate = messages.Navigate
	}
	m := Model{
		cmdChan:  cmdChan,
		navigate: navigate,
		modal:    resumemodal.New(),
		toast:    toast.New(ui.SuccessToast, ui.ErrorToast),
		viewport: viewport.New(80, 20),
		keys:     defaultKeyMap(),
		copyURL:  clipboard.WriteAll,
	}
	m.SetSize(80, 24)
	return m
}

// WithClipboard replaces the function used to copy the resume URL.
func (m Model) WithClipboard(copyURL func(string) error) Model {
	m.copyURL = copyURL
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetSession activates the screen for ctx. It only acts when the auth flag or
// the user identity differs from the previous call, so repeated renders with the
// same session never refetch. A signed-out session redirects to the landing
// route without fetching.
func (m Model) SetSession(ctx session.Context) (Model, tea.Cmd) {
	if m.active && m.session.Equal(ctx) {
		return m, nil
	}
	m.active = true
	m.session = ctx
	m.applications = nil
	m.cursor = 0
	m.modal = m.modal.Close()

	if !ctx.Authorized {
		m.loading = false
		m.syncViewport()
		return m, m.navigate(messages.LandingRoute)
	}

	m.view = ctx.View()
	m.loading = true
	m.syncViewport()

	getLog().Debug().Str("view", m.view.String()).Msg("Loading applications")
	m.send(protocol.LoadApplicationsCommand{Metadata: protocol.NewMetadata(), View: m.view})
	return m, nil
}

// send hands cmd to the orchestrator without blocking the event loop
func (m Model) send(cmd protocol.Command) {
	cmdChan := m.cmdChan
	go func() {
		cmdChan <- cmd
	}()
}

// Applications returns the rows currently shown, in server order.
func (m Model) Applications() []models.Application {
	return m.applications
}

// View kind currently rendered.
func (m Model) ViewKind() models.ViewKind {
	return m.view
}

func (m Model) Loading() bool {
	return m.loading
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Modal() resumemodal.Model {
	return m.modal
}

func (m Model) Toast() toast.Model {
	return m.toast
}

func (m Model) selected() (models.Application, bool) {
	if m.cursor < 0 || m.cursor >= len(m.applications) {
		return models.Application{}, false
	}
	return m.applications[m.cursor], true
}

// GetLayoutInfo returns layout information for the applications screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	status := fmt.Sprintf("Total: %d applications", len(m.applications))
	if m.loading {
		status = "Loading applications..."
	}
	if u := m.session.User; u != nil {
		status = fmt.Sprintf("%s (%s) • %s", u.Name, u.Role, status)
	}

	return layout.LayoutInfo{
		Title:       m.view.Heading(),
		Breadcrumbs: []string{"CareerDesk", m.view.Heading()},
		Status:      status,
		Notice:      m.toast.View(),
		HelpItems:   m.helpItems(),
	}
}

func (m Model) helpItems() []layout.HelpItem {
	if m.modal.IsOpen() {
		return []layout.HelpItem{
			{Key: "y", Description: "copy url"},
			{Key: "esc", Description: "close"},
		}
	}
	items := []layout.HelpItem{
		{Key: "↑/↓", Description: "move"},
		{Key: "enter", Description: "resume"},
	}
	if m.view.CanDelete() {
		items = append(items, layout.HelpItem{Key: "d", Description: "delete"})
	}
	return append(items,
		layout.HelpItem{Key: "L", Description: "logout"},
		layout.HelpItem{Key: "q", Description: "quit"},
	)
}

// SetSize updates the model's dimensions and viewport size
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.syncViewport()
}

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetTUILogger().With().Str("screen", "applications").Logger()
		log = &l
	})
	return log
}
