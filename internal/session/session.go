// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the ambient authentication context consumed by the
// applications view and persists the portal credential between runs.
package session

import "github.com/careerdesk/careerdesk/internal/models"

// Context is the authentication state shared with screens.
type Context struct {
	Authorized bool
	User       *models.User
}

// Anonymous is the context of a signed-out user.
var Anonymous = Context{}

// View selects the applications view for the current user.
func (c Context) View() models.ViewKind {
	return models.ViewFor(c.User)
}

// Equal compares the parts of the context that decide what the applications
// view shows: the auth flag and the user's identity (ID and role).
func (c Context) Equal(other Context) bool {
	if c.Authorized != other.Authorized {
		return false
	}
	if c.User == nil || other.User == nil {
		return c.User == nil && other.User == nil
	}
	return c.User.ID == other.User.ID && c.User.Role == other.User.Role
}
