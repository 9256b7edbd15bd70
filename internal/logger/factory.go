// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"github.com/rs/zerolog"
)

// Static logger getters that map directly to config.yaml log.levels

// GetOrchestratorLogger returns a logger for the orchestrator
func GetOrchestratorLogger() zerolog.Logger {
	return GetLogger("orchestrator")
}

// GetTUILogger returns a logger for TUI components
func GetTUILogger() zerolog.Logger {
	return GetLogger("tui")
}

// GetAPILogger returns a logger for portal HTTP calls
func GetAPILogger() zerolog.Logger {
	return GetLogger("api")
}

// GetSessionLogger returns a logger for credential storage
func GetSessionLogger() zerolog.Logger {
	return GetLogger("session")
}

// GetServerLogger returns a logger for the development portal stub
func GetServerLogger() zerolog.Logger {
	return GetLogger("server")
}

func GetCLILogger() zerolog.Logger {
	return GetLogger("cli")
}

// WithRequestID tags a logger with the request id that flows through commands, events and HTTP calls.
func WithRequestID(l zerolog.Logger, requestID string) zerolog.Logger {
	if requestID == "" {
		return l
	}
	return l.With().Str("request_id", requestID).Logger()
}
