// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"testing"

	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/protocol"
	"github.com/careerdesk/careerdesk/internal/tui/messages"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertCommandSent verifies that a command of the expected type was sent
func AssertCommandSent(t *testing.T, capture *CommandCapture, expectedType interface{}) {
	t.Helper()
	require.True(t, capture.CommandCount() > 0, "Expected at least one command to be sent")
	assert.IsType(t, expectedType, capture.LastCommand(), "Command type mismatch")
}

// AssertLoadApplicationsCommand verifies that a LoadApplicationsCommand was sent for view
func AssertLoadApplicationsCommand(t *testing.T, capture *CommandCapture, view models.ViewKind) {
	t.Helper()
	AssertCommandSent(t, capture, protocol.LoadApplicationsCommand{})
	cmd := capture.LastCommand().(protocol.LoadApplicationsCommand)
	assert.Equal(t, view, cmd.View, "LoadApplicationsCommand view mismatch")
}

// AssertDeleteApplicationCommand verifies that a DeleteApplicationCommand was sent with the correct ID
func AssertDeleteApplicationCommand(t *testing.T, capture *CommandCapture, applicationID string) {
	t.Helper()
	AssertCommandSent(t, capture, protocol.DeleteApplicationCommand{})
	cmd := capture.LastCommand().(protocol.DeleteApplicationCommand)
	assert.Equal(t, applicationID, cmd.ApplicationID, "DeleteApplicationCommand application ID mismatch")
}

// AssertLoginCommand verifies that a LoginCommand was sent with the given credentials
func AssertLoginCommand(t *testing.T, capture *CommandCapture, email, password string, role models.Role) {
	t.Helper()
	AssertCommandSent(t, capture, protocol.LoginCommand{})
	cmd := capture.LastCommand().(protocol.LoginCommand)
	assert.Equal(t, email, cmd.Email)
	assert.Equal(t, password, cmd.Password)
	assert.Equal(t, role, cmd.Role)
}

// AssertNavigateMessage verifies a NavigateMsg to the expected route
func AssertNavigateMessage(t *testing.T, cmd tea.Cmd, expected messages.Route) {
	t.Helper()
	require.NotNil(t, cmd, "Expected a navigation command")
	msg, ok := ExecuteCommand(cmd).(messages.NavigateMsg)
	require.True(t, ok, "Expected NavigateMsg")
	assert.Equal(t, expected, msg.Route)
}

// AssertQuitMessage verifies that a quit message was generated
func AssertQuitMessage(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	assert.NotNil(t, cmd, "Expected a command to be generated")
	msg := ExecuteCommand(cmd)
	assert.IsType(t, tea.QuitMsg{}, msg, "Expected quit message")
}

// AssertNoCommand verifies that no command was generated
func AssertNoCommand(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	assert.Nil(t, cmd, "Expected no command to be generated")
}

// AssertCommandCount verifies the exact number of commands captured
func AssertCommandCount(t *testing.T, capture *CommandCapture, expected int) {
	t.Helper()
	assert.Equal(t, expected, capture.CommandCount(), "Command count mismatch")
}

// AssertNoCommands verifies that no commands were captured
func AssertNoCommands(t *testing.T, capture *CommandCapture) {
	t.Helper()
	assert.Equal(t, 0, capture.CommandCount(), "Expected no commands to be captured")
}
