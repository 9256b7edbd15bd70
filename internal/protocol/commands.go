// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

// Here lies the definition of the data that the orchestrator can receive from the UI
// All data that is received by the orchestrator from the UI is named: Command
//
// Commands are simple high level requests. They never carry backend URLs; the orchestrator
// decides which endpoint serves a command.
//
// Commands are separated into Read and ReadWrite commands and grouped together below.
package protocol

import "github.com/careerdesk/careerdesk/internal/models"

// Command represents commands that can be sent to the orchestrator
type Command interface {
	GetBaseMessage() Metadata
}

// Read commands

// LoadSessionCommand asks for the current user of the stored session
type LoadSessionCommand struct {
	Metadata
}

func (c LoadSessionCommand) GetBaseMessage() Metadata {
	return c.Metadata
}

// LoadApplicationsCommand requests the application list for a view.
// EmployerView reads the employer-scoped list, JobSeekerView the jobseeker-scoped one.
type LoadApplicationsCommand struct {
	Metadata
	View models.ViewKind
}

func (c LoadApplicationsCommand) GetBaseMessage() Metadata {
	return c.Metadata
}

// ReadWrite commands

// LoginCommand signs in against the portal and stores the resulting credential
type LoginCommand struct {
	Metadata
	Email    string
	Password string
	Role     models.Role
}

func (c LoginCommand) GetBaseMessage() Metadata {
	return c.Metadata
}

// LogoutCommand ends the portal session and forgets the stored credential
type LogoutCommand struct {
	Metadata
}

func (c LogoutCommand) GetBaseMessage() Metadata {
	return c.Metadata
}

// DeleteApplicationCommand deletes one application by identifier
type DeleteApplicationCommand struct {
	Metadata
	ApplicationID string
}

func (c DeleteApplicationCommand) GetBaseMessage() Metadata {
	return c.Metadata
}
