// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/logger"
	"github.com/careerdesk/careerdesk/internal/protocol"
	"github.com/careerdesk/careerdesk/internal/session"
	"github.com/careerdesk/careerdesk/internal/tui/layout"
	"github.com/careerdesk/careerdesk/internal/tui/messages"
	"github.com/careerdesk/careerdesk/internal/tui/screens/applications"
	"github.com/careerdesk/careerdesk/internal/tui/screens/landing"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScreenType represents the current active screen
type ScreenType int

const (
	// LoadingScreen is shown until the stored session has been checked
	LoadingScreen ScreenType = iota
	LandingScreen
	ApplicationsScreen
)

type MainModel struct {
	currentScreen ScreenType

	// Session the applications screen is rendered for
	session session.Context
	// Error reported while the session was loading, shown once landing mounts
	pendingNotice string

	spinner      spinner.Model
	landing      landing.Model
	applications applications.Model

	ui            config.UIConfig
	width, height int
	cmdChan       chan<- protocol.Command
}

// NewMainModel creates a MainModel that waits for the stored session before choosing a screen
func NewMainModel(cmdChan chan<- protocol.Command, ui config.UIConfig) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(layout.SecondaryColor)

	return MainModel{
		currentScreen: LoadingScreen,
		session:       session.Anonymous,
		spinner:       s,
		landing:       landing.NewModel(cmdChan, ui),
		applications:  applications.NewModel(cmdChan, messages.Navigate, ui),
		ui:            ui,
		width:         80,
		height:        24,
		cmdChan:       cmdChan,
	}
}

func (m MainModel) Init() tea.Cmd {
	cmdChan := m.cmdChan
	go func() {
		cmdChan <- protocol.LoadSessionCommand{Metadata: protocol.NewMetadata()}
	}()
	return m.spinner.Tick
}

// CurrentScreen returns the screen being shown
func (m MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Session returns the session the screens are rendered for
func (m MainModel) Session() session.Context {
	return m.session
}

// setSize updates the size for every screen so a later switch renders correctly
func (m *MainModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.landing.SetSize(width, height)
	m.applications.SetSize(width, height)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	log := logger.GetTUILogger().With().Str("component", "main_model").Logger()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.currentScreen != LoadingScreen {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case protocol.SessionLoadedEvent:
		ctx := session.Context{Authorized: msg.Authorized, User: msg.User}
		log.Info().
			Bool("authorized", ctx.Authorized).
			Str("screen", screenName(m.currentScreen)).
			Msg("Session loaded")
		m.session = ctx
		// Unauthorized sessions go through the applications screen too, which redirects to landing
		return m.showApplications()

	case messages.NavigateMsg:
		log.Debug().Str("route", msg.Route.String()).Msg("Navigate")
		switch msg.Route {
		case messages.LandingRoute:
			return m.showLanding()
		case messages.ApplicationsRoute:
			return m.showApplications()
		}
		return m, nil

	case protocol.ErrorEvent:
		if m.currentScreen == LoadingScreen {
			m.pendingNotice = msg.Message
			return m, nil
		}
	}

	// Delegate to the current screen
	var model tea.Model
	var cmd tea.Cmd
	switch m.currentScreen {
	case LandingScreen:
		model, cmd = m.landing.Update(msg)
		m.landing = model.(landing.Model)
	case ApplicationsScreen:
		model, cmd = m.applications.Update(msg)
		m.applications = model.(applications.Model)
	case LoadingScreen:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, cmd
}

// showApplications mounts the applications screen (fresh state when coming from another screen)
// and hands it the current session.
func (m MainModel) showApplications() (tea.Model, tea.Cmd) {
	if m.currentScreen != ApplicationsScreen {
		m.applications = applications.NewModel(m.cmdChan, messages.Navigate, m.ui)
		m.applications.SetSize(m.width, m.height)
		m.currentScreen = ApplicationsScreen
	}
	var cmd tea.Cmd
	m.applications, cmd = m.applications.SetSession(m.session)
	return m, cmd
}

// showLanding mounts a fresh login form
func (m MainModel) showLanding() (tea.Model, tea.Cmd) {
	m.landing = landing.NewModel(m.cmdChan, m.ui)
	m.landing.SetSize(m.width, m.height)
	m.currentScreen = LandingScreen

	cmd := m.landing.Init()
	if m.pendingNotice != "" {
		var model tea.Model
		var noticeCmd tea.Cmd
		model, noticeCmd = m.landing.ShowError(m.pendingNotice)
		m.landing = model.(landing.Model)
		m.pendingNotice = ""
		cmd = noticeCmd
	}
	return m, cmd
}

func (m MainModel) View() string {
	switch m.currentScreen {
	case LoadingScreen:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading session...")
	case LandingScreen:
		return m.landing.View()
	case ApplicationsScreen:
		return m.applications.View()
	default:
		return "Unknown screen"
	}
}

// screenName returns a string representation of the screen type for logging
func screenName(s ScreenType) string {
	switch s {
	case LoadingScreen:
		return "Loading"
	case LandingScreen:
		return "Landing"
	case ApplicationsScreen:
		return "Applications"
	default:
		return "Unknown"
	}
}
