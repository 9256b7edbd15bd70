// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/protocol"
	"github.com/careerdesk/careerdesk/internal/server"
	"github.com/careerdesk/careerdesk/internal/session"
	"github.com/careerdesk/careerdesk/internal/tui/messages"
	"github.com/careerdesk/careerdesk/internal/tui/screens/applications"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

type demoModel struct {
	screen  applications.Model
	evtChan chan protocol.Event
}

func (m demoModel) Init() tea.Cmd {
	return listenForEvents(m.evtChan)
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "e" {
			// Simulate a failed fetch
			event := protocol.ErrorEvent{
				Metadata: protocol.NewMetadata(),
				Op:       protocol.OpLoadApplications,
				Message:  "Simulated error for testing",
			}
			return m, func() tea.Msg { return event }
		}

	case messages.NavigateMsg:
		// No other screens in the harness
		return m, tea.Quit
	}

	screenModel, cmd := m.screen.Update(msg)
	m.screen = screenModel.(applications.Model)
	cmds = append(cmds, cmd)

	// Keep listening after every event delivered by the fake backend
	if _, ok := msg.(protocol.Event); ok {
		cmds = append(cmds, listenForEvents(m.evtChan))
	}
	return m, tea.Batch(cmds...)
}

func (m demoModel) View() string {
	return m.screen.View()
}

func listenForEvents(evtChan chan protocol.Event) tea.Cmd {
	return func() tea.Msg {
		return <-evtChan
	}
}

// fakeBackend answers screen commands the way the orchestrator would, from the stub seed
func fakeBackend(cmdChan <-chan protocol.Command, evtChan chan<- protocol.Event, view models.ViewKind, failDeletes bool) {
	apps := server.DefaultSeed().Applications
	for cmd := range cmdChan {
		time.Sleep(150 * time.Millisecond)
		switch cmd := cmd.(type) {
		case protocol.LoadApplicationsCommand:
			evtChan <- protocol.ApplicationsLoadedEvent{Metadata: cmd.Metadata, View: view, Applications: apps}
		case protocol.DeleteApplicationCommand:
			if failDeletes {
				evtChan <- protocol.ErrorEvent{
					Metadata:      cmd.Metadata,
					Op:            protocol.OpDeleteApplication,
					Message:       "Failed to delete application",
					ApplicationID: cmd.ApplicationID,
				}
				continue
			}
			apps = lo.Reject(apps, func(app models.Application, _ int) bool { return app.ID == cmd.ApplicationID })
			evtChan <- protocol.ApplicationDeletedEvent{Metadata: cmd.Metadata, ApplicationID: cmd.ApplicationID, Message: "Application Deleted!"}
		case protocol.LogoutCommand:
			evtChan <- protocol.SessionLoadedEvent{Metadata: cmd.Metadata}
		}
	}
}

func main() {
	role := flag.String("role", "seeker", "Role to render: seeker or employer")
	failDeletes := flag.Bool("fail-deletes", false, "Answer every delete with an error")
	flag.Parse()

	seed := server.DefaultSeed()
	user := &seed.Users[0].User
	if *role == "employer" {
		user = &seed.Users[1].User
	}
	ctx := session.Context{Authorized: true, User: user}

	cmdChan := make(chan protocol.Command, 10)
	evtChan := make(chan protocol.Event, 10)
	go fakeBackend(cmdChan, evtChan, ctx.View(), *failDeletes)

	screen := applications.NewModel(cmdChan, messages.Navigate, config.UIConfig{})
	screen, _ = screen.SetSession(ctx)

	fmt.Println("Applications Screen Demo")
	fmt.Println("Commands:")
	fmt.Println("  ↑/↓ - Navigate")
	fmt.Println("  Enter - Open resume")
	fmt.Println("  d - Delete application (seeker)")
	fmt.Println("  e - Simulate fetch error")
	fmt.Println("  q - Quit")
	fmt.Println("")
	time.Sleep(time.Second)

	p := tea.NewProgram(demoModel{screen: screen, evtChan: evtChan}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
}
