// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package messages

import tea "github.com/charmbracelet/bubbletea"

// Route names a top-level screen
type Route int

const (
	// LandingRoute is where signed-out users are sent (the login form).
	LandingRoute Route = iota
	// ApplicationsRoute shows the applications of the signed-in user.
	ApplicationsRoute
)

func (r Route) String() string {
	switch r {
	case ApplicationsRoute:
		return "applications"
	default:
		return "landing"
	}
}

// NavigateMsg asks the main model to switch screens
type NavigateMsg struct {
	Route Route
}

// Navigator turns a route into a command. Screens receive one instead of
// emitting navigation messages themselves.
type Navigator func(Route) tea.Cmd

// Navigate is the Navigator used by the running application.
func Navigate(route Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}
