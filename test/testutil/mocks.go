// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/careerdesk/careerdesk/internal/protocol"
	"github.com/careerdesk/careerdesk/internal/tui/messages"
	tea "github.com/charmbracelet/bubbletea"
)

// CommandCapture captures commands sent through a channel
type CommandCapture struct {
	Commands []protocol.Command
	ch       chan protocol.Command
	mu       sync.RWMutex
}

// NewCommandCapture creates a new command capture instance
func NewCommandCapture() *CommandCapture {
	ch := make(chan protocol.Command, 100)
	capture := &CommandCapture{
		Commands: make([]protocol.Command, 0),
		ch:       ch,
	}

	go func() {
		for cmd := range ch {
			capture.mu.Lock()
			capture.Commands = append(capture.Commands, cmd)
			capture.mu.Unlock()
		}
	}()

	return capture
}

// Channel returns the send channel for commands
func (c *CommandCapture) Channel() chan<- protocol.Command {
	return c.ch
}

// LastCommand returns the most recent command sent, or nil if none
func (c *CommandCapture) LastCommand() protocol.Command {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.Commands) == 0 {
		return nil
	}
	return c.Commands[len(c.Commands)-1]
}

// CommandCount returns the number of commands captured
func (c *CommandCapture) CommandCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.Commands)
}

// AllCommands returns a copy of all captured commands
func (c *CommandCapture) AllCommands() []protocol.Command {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]protocol.Command, len(c.Commands))
	copy(result, c.Commands)
	return result
}

// Clear clears all captured commands
func (c *CommandCapture) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Commands = c.Commands[:0]
}

// Close closes the capture channel
func (c *CommandCapture) Close() {
	close(c.ch)
}

// WaitForCommands waits until at least n commands have been captured.
// Screens send commands from goroutines, so tests poll for them.
func (c *CommandCapture) WaitForCommands(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.CommandCount() >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d commands, got %d", n, c.CommandCount())
}

// NavigationRecorder is a messages.Navigator that records every requested route
type NavigationRecorder struct {
	mu     sync.Mutex
	Routes []messages.Route
}

// Navigator returns a navigator bound to the recorder. The returned command
// yields the same NavigateMsg the production navigator does.
func (r *NavigationRecorder) Navigator() messages.Navigator {
	return func(route messages.Route) tea.Cmd {
		r.mu.Lock()
		r.Routes = append(r.Routes, route)
		r.mu.Unlock()
		return messages.Navigate(route)
	}
}

// Count returns how many navigations were requested
func (r *NavigationRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Routes)
}

// Last returns the most recent route, if any
func (r *NavigationRecorder) Last() (messages.Route, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Routes) == 0 {
		return 0, false
	}
	return r.Routes[len(r.Routes)-1], true
}
