// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

// Role classifies a portal user.
type Role string

const (
	RoleJobSeeker Role = "Job Seeker"
	RoleEmployer  Role = "Employer"
)

// Valid reports whether r is one of the roles the portal knows about
func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

// User is the signed-in portal user.
type User struct {
	ID    string `json:"_id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Role  Role   `json:"role" yaml:"role"`
}

// ViewKind selects which applications list a user sees.
// It is a closed two-variant union: JobSeekerView or EmployerView.
type ViewKind int

const (
	JobSeekerView ViewKind = iota
	EmployerView
)

// ViewFor selects the view for a user. Employers get the employer view; every other
// user (including a nil user) gets the job seeker view. The one view picks both the
// endpoint and the row layout.
func ViewFor(u *User) ViewKind {
	if u != nil && u.Role == RoleEmployer {
		return EmployerView
	}
	return JobSeekerView
}

// String returns the view name used in logs
func (v ViewKind) String() string {
	switch v {
	case EmployerView:
		return "employer"
	default:
		return "jobseeker"
	}
}

// Heading is the title shown above the list.
func (v ViewKind) Heading() string {
	switch v {
	case EmployerView:
		return "Applications From Job Seekers"
	default:
		return "My Applications"
	}
}

// CanDelete reports whether rows in this view expose the delete action.
func (v ViewKind) CanDelete() bool {
	return v == JobSeekerView
}
