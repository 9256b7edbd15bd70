// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// ErrApplicationNotFound is returned when a delete targets an unknown or foreign application.
var ErrApplicationNotFound = errors.New("application not found")

// SeedUser is a portal account with its password.
type SeedUser struct {
	models.User `yaml:",inline"`
	Password    string `yaml:"password"`
}

// Seed is the content of the stub's YAML seed file.
type Seed struct {
	Users        []SeedUser           `yaml:"users"`
	Applications []models.Application `yaml:"applications"`
}

// LoadSeed reads a seed file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &seed, nil
}

// DefaultSeed is used when no seed file is configured.
func DefaultSeed() *Seed {
	return &Seed{
		Users: []SeedUser{
			{User: models.User{ID: "u-seeker", Name: "Ada Seeker", Email: "ada@example.com", Phone: "5550100", Role: models.RoleJobSeeker}, Password: "password"},
			{User: models.User{ID: "u-employer", Name: "Grace Employer", Email: "grace@example.com", Phone: "5550200", Role: models.RoleEmployer}, Password: "password"},
		},
		Applications: []models.Application{
			{
				ID: "app-1", Name: "Ada Seeker", Email: "ada@example.com", Phone: "5550100",
				Address: "12 Analytical Way", CoverLetter: "I would love to build compilers with you.",
				Resume:      models.Resume{URL: "https://files.example.com/resumes/ada.png"},
				ApplicantID: "u-seeker", EmployerID: "u-employer",
			},
			{
				ID: "app-2", Name: "Ada Seeker", Email: "ada@example.com", Phone: "5550100",
				Address: "12 Analytical Way", CoverLetter: "Backend role, remote preferred.",
				Resume:      models.Resume{URL: "https://files.example.com/resumes/ada.pdf"},
				ApplicantID: "u-seeker", EmployerID: "u-employer",
			},
		},
	}
}

// Store is the stub's in-memory state.
type Store struct {
	mu           sync.RWMutex
	users        []SeedUser
	applications []models.Application
}

// NewStore creates a store from a seed.
func NewStore(seed *Seed) *Store {
	if seed == nil {
		seed = &Seed{}
	}
	return &Store{
		users:        append([]SeedUser(nil), seed.Users...),
		applications: append([]models.Application(nil), seed.Applications...),
	}
}

// Authenticate finds the account matching email, password and role.
func (s *Store) Authenticate(email, password string, role models.Role) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := lo.Find(s.users, func(u SeedUser) bool {
		return strings.EqualFold(u.Email, email) && u.Password == password && u.Role == role
	})
	if !ok {
		return nil, false
	}
	user := u.User
	return &user, true
}

// User returns the account with the given id.
func (s *Store) User(id string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := lo.Find(s.users, func(u SeedUser) bool { return u.ID == id })
	if !ok {
		return nil, false
	}
	user := u.User
	return &user, true
}

// ApplicationsFor returns the applications visible to user, in insertion order.
func (s *Store) ApplicationsFor(user *models.User) []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.applications, func(a models.Application, _ int) bool {
		if user.Role == models.RoleEmployer {
			return a.EmployerID == user.ID
		}
		return a.ApplicantID == user.ID
	})
}

// DeleteApplication removes an application owned by applicantID.
func (s *Store) DeleteApplication(applicantID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, idx, ok := lo.FindIndexOf(s.applications, func(a models.Application) bool {
		return a.ID == id && a.ApplicantID == applicantID
	})
	if !ok {
		return ErrApplicationNotFound
	}
	s.applications = append(s.applications[:idx], s.applications[idx+1:]...)
	return nil
}
