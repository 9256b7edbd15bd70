// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package landing is the signed-out screen: a login form for email, password and role.
package landing

import (
	"fmt"
	"sync"

	"github.com/careerdesk/careerdesk/internal/config"
	"github.com/careerdesk/careerdesk/internal/logger"
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/careerdesk/careerdesk/internal/protocol"
	"github.com/careerdesk/careerdesk/internal/tui/components/toast"
	"github.com/careerdesk/careerdesk/internal/tui/layout"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	log     *zerolog.Logger
	logOnce sync.Once

	validate = validator.New()
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetTUILogger().With().Str("screen", "landing").Logger()
		log = &l
	})
	return log
}

// Credentials are the values bound to the form fields. They live on the heap
// so the form keeps writing to the same place when the model is copied.
type Credentials struct {
	Email    string
	Password string
	Role     models.Role
}

// Model is the model for the landing screen.
type Model struct {
	cmdChan     chan<- protocol.Command
	form        *huh.Form
	credentials *Credentials
	submitting  bool
	toast       toast.Model
	width       int
	height      int
}

// NewModel creates a new landing model
func NewModel(cmdChan chan<- protocol.Command, ui config.UIConfig) Model {
	m := Model{
		cmdChan:     cmdChan,
		credentials: &Credentials{Role: models.RoleJobSeeker},
		toast:       toast.New(ui.SuccessToast, ui.ErrorToast),
		width:       80,
		height:      24,
	}
	m.initForm()
	return m
}

// initForm builds a fresh form. Email and role survive a failed attempt, the password does not.
func (m *Model) initForm() {
	m.credentials.Password = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("you@example.com").
				Value(&m.credentials.Email).
				Validate(func(s string) error {
					if err := validate.Var(s, "required,email"); err != nil {
						return fmt.Errorf("a valid email is required")
					}
					return nil
				}),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.credentials.Password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password is required")
					}
					return nil
				}),

			huh.NewSelect[models.Role]().
				Key("role").
				Title("Login as").
				Options(
					huh.NewOption(string(models.RoleJobSeeker), models.RoleJobSeeker),
					huh.NewOption(string(models.RoleEmployer), models.RoleEmployer),
				).
				Value(&m.credentials.Role),
		),
	).WithTheme(huh.ThemeCharm())
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Credentials returns the values currently bound to the form.
func (m Model) Credentials() Credentials {
	return *m.credentials
}

// Submitting reports whether a login request is in flight.
func (m Model) Submitting() bool {
	return m.submitting
}

func (m Model) Toast() toast.Model {
	return m.toast
}

// GetLayoutInfo returns layout information for the landing screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	status := "Sign in to view your applications"
	if m.submitting {
		status = "Signing in..."
	}
	return layout.LayoutInfo{
		Title:       "CareerDesk",
		Breadcrumbs: []string{"CareerDesk", "Login"},
		Status:      status,
		Notice:      m.toast.View(),
		HelpItems: []layout.HelpItem{
			{Key: "tab", Description: "next field"},
			{Key: "enter", Description: "submit"},
			{Key: "ctrl+c", Description: "quit"},
		},
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	dims := layout.GetContentArea(m.GetLayoutInfo(), width, height)
	if dims.Valid {
		m.form = m.form.WithWidth(min(dims.Width-4, 60))
	}
}
