// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package models holds the portal domain types shared by the client, the stub and the TUI.
package models

import "strings"

// PDFExtension is the literal suffix that marks a resume as a document rather than an image.
const PDFExtension = ".pdf"

// Resume references an uploaded resume file (image or PDF).
type Resume struct {
	PublicID string `json:"public_id,omitempty" yaml:"public_id,omitempty"`
	URL      string `json:"url" yaml:"url"`
}

// Application is a job seeker's submission against a job posting as returned by the portal backend.
type Application struct {
	ID          string `json:"_id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email" yaml:"email"`
	Phone       string `json:"phone" yaml:"phone"`
	Address     string `json:"address" yaml:"address"`
	CoverLetter string `json:"coverLetter" yaml:"cover_letter"`
	Resume      Resume `json:"resume" yaml:"resume"`

	// Owner fields are populated by the backend and used by the stub to scope lists.
	ApplicantID string `json:"applicantID,omitempty" yaml:"applicant_id,omitempty"`
	EmployerID  string `json:"employerID,omitempty" yaml:"employer_id,omitempty"`
}

// ResumeAffordance is the way a row presents the resume link.
type ResumeAffordance int

const (
	// ResumeThumbnail renders the resume as an image preview.
	ResumeThumbnail ResumeAffordance = iota
	// ResumeDocumentIcon renders a document icon for PDF resumes.
	ResumeDocumentIcon
)

// String returns a short label for the affordance
func (a ResumeAffordance) String() string {
	switch a {
	case ResumeDocumentIcon:
		return "document"
	default:
		return "image"
	}
}

// IsPDF reports whether the resume URL ends with the literal PDF extension.
// The match is case-sensitive: "resume.PDF" is treated as an image.
func IsPDF(url string) bool {
	return strings.HasSuffix(url, PDFExtension)
}

// AffordanceFor returns how a resume at url is presented in the given view.
// Job seekers always see a thumbnail; employers get a document icon for PDFs.
func AffordanceFor(view ViewKind, url string) ResumeAffordance {
	if view == EmployerView && IsPDF(url) {
		return ResumeDocumentIcon
	}
	return ResumeThumbnail
}
