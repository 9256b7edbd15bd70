// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/protocol"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StartTUI initializes and runs the TUI application until the user quits or ctx ends
func StartTUI(ctx context.Context, cmdChan chan<- protocol.Command, eventChan <-chan protocol.Event, ui config.UIConfig) error {
	mainModel := NewMainModel(cmdChan, ui)

	p := tea.NewProgram(mainModel, tea.WithAltScreen(), tea.WithContext(ctx))

	critical := make(chan protocol.CriticalErrorEvent, 1)
	go forwardEvents(eventChan, p, critical)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}

	select {
	case event := <-critical:
		handleCriticalError(event)
	default:
	}
	return err
}

// programSender is the part of *tea.Program the event forwarder needs
type programSender interface {
	Send(msg tea.Msg)
	Quit()
}

// forwardEvents passes orchestrator events into the program until eventChan
// closes. A critical error is handed to critical and stops the program.
func forwardEvents(eventChan <-chan protocol.Event, p programSender, critical chan<- protocol.CriticalErrorEvent) {
	for event := range eventChan {
		if criticalErr, ok := event.(protocol.CriticalErrorEvent); ok {
			critical <- criticalErr
			p.Quit()
			return
		}
		p.Send(event)
	}
}

// handleCriticalError prints a red error message and exits the application
func handleCriticalError(event protocol.CriticalErrorEvent) {
	writeCriticalError(os.Stderr, event)
	os.Exit(1)
}

func writeCriticalError(w io.Writer, event protocol.CriticalErrorEvent) {
	errorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")).
		Render

	fmt.Fprintf(w, "\n%s\n", errorStyle("CRITICAL ERROR: "+event.Message))
	if event.Context != "" {
		fmt.Fprintf(w, "%s\n", errorStyle("Context: "+event.Context))
	}
	fmt.Fprintf(w, "\n")
}
