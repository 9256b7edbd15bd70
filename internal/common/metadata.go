// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package common provides shared types used across multiple packages.
package common

import "github.com/google/uuid"

// Metadata contains common fields for all messages exchanged between the UI and the orchestrator.
// This includes Commands (UI → Orchestrator) and Events (Orchestrator → UI).
type Metadata struct {
	// RequestID correlates a command with the events it produces and is forwarded
	// to the portal backend as the X-Request-ID header.
	// Optional - the orchestrator assigns one when empty.
	RequestID string `json:"request_id,omitempty"`

	// Version indicates the protocol version for backward compatibility.
	// Format: "v{major}.{minor}.{patch}" (e.g., "v1.0.0")
	Version string `json:"version"`
}

// CurrentProtocolVersion defines the current version of the protocol.
const CurrentProtocolVersion = "v1.0.0"

// NewMetadata returns metadata with a fresh request ID and the current protocol version.
func NewMetadata() Metadata {
	return Metadata{
		RequestID: uuid.NewString(),
		Version:   CurrentProtocolVersion,
	}
}

// Event represents events that can be sent from the orchestrator to the TUI.
// Any type implementing this interface can be sent through the event channel.
type Event interface {
	GetMetadata() Metadata
}
