// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

// Here lies the definition of the data that the orchestrator can send to the UI
// All data that the UI can receive from the orchestrator is named: Event
// Every event answers exactly one Command and carries that command's Metadata.
package protocol

import (
	"github.com/careerdesk/careerdesk/internal/models"
)

// SessionLoadedEvent reports the ambient session: whether the user is authorized and who they are.
// It answers LoadSessionCommand, LoginCommand and LogoutCommand.
type SessionLoadedEvent struct {
	Metadata
	Authorized bool
	User       *models.User
}

func (e SessionLoadedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// ApplicationsLoadedEvent is sent when an application list has been fetched
type ApplicationsLoadedEvent struct {
	Metadata
	View         models.ViewKind
	Applications []models.Application
}

func (e ApplicationsLoadedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// ApplicationDeletedEvent is sent when the backend confirmed a delete
type ApplicationDeletedEvent struct {
	Metadata
	ApplicationID string
	Message       string // Server-provided confirmation
}

func (e ApplicationDeletedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// ErrorOp names the operation an ErrorEvent belongs to
type ErrorOp string

const (
	OpLoadSession       ErrorOp = "load_session"
	OpLogin             ErrorOp = "login"
	OpLogout            ErrorOp = "logout"
	OpLoadApplications  ErrorOp = "load_applications"
	OpDeleteApplication ErrorOp = "delete_application"
)

// ErrorEvent reports a non-fatal failure. Message is meant for the user,
// Context carries the underlying error for logs.
type ErrorEvent struct {
	Metadata
	Op            ErrorOp
	Message       string
	Context       string
	ApplicationID string // Optional - set for delete failures
}

func (e ErrorEvent) GetMetadata() Metadata {
	return e.Metadata
}

// CriticalErrorEvent terminates the TUI
type CriticalErrorEvent struct {
	Metadata
	Message string
	Context string
}

func (e CriticalErrorEvent) GetMetadata() Metadata {
	return e.Metadata
}
