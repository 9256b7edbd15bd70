// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// cmdWindow bounds how long RunInit waits on a single command. Ticks and
// cursor blinks take longer and are dropped.
const cmdWindow = 50 * time.Millisecond

// SendMessage simulates sending a message to a Bubble Tea model
// Returns the updated model and any commands generated
func SendMessage(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	return model.Update(msg)
}

// ExecuteCommand executes a tea.Cmd and returns the resulting message
// Useful for testing command chains
func ExecuteCommand(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// RunInit runs the model's Init command and feeds whatever it produces back
// through Update, the way a program would on start.
func RunInit(model tea.Model) tea.Model {
	return runCommands(model, []tea.Cmd{model.Init()}, 3)
}

func runCommands(model tea.Model, cmds []tea.Cmd, depth int) tea.Model {
	if depth == 0 {
		return model
	}

	var next []tea.Cmd
	for _, cmd := range cmds {
		msg, ok := executeWithin(cmd, cmdWindow)
		if !ok || msg == nil {
			continue
		}
		switch msg := msg.(type) {
		case tea.BatchMsg:
			model = runCommands(model, msg, depth-1)
		case tea.QuitMsg:
		default:
			var follow tea.Cmd
			model, follow = model.Update(msg)
			if follow != nil {
				next = append(next, follow)
			}
		}
	}
	if len(next) > 0 {
		model = runCommands(model, next, depth-1)
	}
	return model
}

func executeWithin(cmd tea.Cmd, window time.Duration) (tea.Msg, bool) {
	if cmd == nil {
		return nil, false
	}
	result := make(chan tea.Msg, 1)
	go func() {
		result <- cmd()
	}()
	select {
	case msg := <-result:
		return msg, true
	case <-time.After(window):
		return nil, false
	}
}

// KeyPress creates a tea.KeyMsg for testing keyboard input
func KeyPress(key string) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(key),
	}
}

// SpecialKey creates special key messages (Enter, Esc, etc.)
func SpecialKey(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

// WindowSizeMsg creates a window size message for testing
func WindowSizeMsg(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  width,
		Height: height,
	}
}
