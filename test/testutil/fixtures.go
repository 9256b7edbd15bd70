// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/protocol"
	"github.com/careerdesk/careerdesk/internal/session"
)

// SampleJobSeeker returns a signed-in job seeker
func SampleJobSeeker() *models.User {
	return &models.User{
		ID:    "u-seeker",
		Name:  "Ada Seeker",
		Email: "ada@example.com",
		Role:  models.RoleJobSeeker,
	}
}

// SampleEmployer returns a signed-in employer
func SampleEmployer() *models.User {
	return &models.User{
		ID:    "u-employer",
		Name:  "Grace Employer",
		Email: "grace@example.com",
		Role:  models.RoleEmployer,
	}
}

// SeekerSession is an authorized job seeker session context
func SeekerSession() session.Context {
	return session.Context{Authorized: true, User: SampleJobSeeker()}
}

// EmployerSession is an authorized employer session context
func EmployerSession() session.Context {
	return session.Context{Authorized: true, User: SampleEmployer()}
}

// SampleApplications returns two applications, one with an image resume and one with a PDF
func SampleApplications() []models.Application {
	return []models.Application{
		{
			ID:          "app-1",
			Name:        "Ada Seeker",
			Email:       "ada@example.com",
			Phone:       "555-0100",
			Address:     "1 Analytical Way",
			CoverLetter: "I would love to join.",
			Resume:      models.Resume{PublicID: "r1", URL: "https://cdn.example.com/ada.png"},
		},
		{
			ID:          "app-2",
			Name:        "Ada Seeker",
			Email:       "ada@example.com",
			Phone:       "555-0100",
			Address:     "1 Analytical Way",
			CoverLetter: "Second posting, same enthusiasm.",
			Resume:      models.Resume{PublicID: "r2", URL: "https://cdn.example.com/ada.pdf"},
		},
	}
}

// ApplicationsLoadedEvent returns the sample applications for view
func ApplicationsLoadedEvent(view models.ViewKind) protocol.ApplicationsLoadedEvent {
	return protocol.ApplicationsLoadedEvent{
		Metadata:     protocol.NewMetadata(),
		View:         view,
		Applications: SampleApplications(),
	}
}

// ApplicationDeletedEvent confirms the deletion of id
func ApplicationDeletedEvent(id, message string) protocol.ApplicationDeletedEvent {
	return protocol.ApplicationDeletedEvent{
		Metadata:      protocol.NewMetadata(),
		ApplicationID: id,
		Message:       message,
	}
}
