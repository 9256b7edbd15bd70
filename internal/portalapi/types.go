// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package portalapi

import (
	"github.com/careerdesk/careerdesk/internal/models"
	"github.com/go-playground/validator/v10"
)

// Endpoint paths of the portal backend.
const (
	EmployerApplicationsPath  = "/api/v1/application/employer/getall"
	JobSeekerApplicationsPath = "/api/v1/application/jobseeker/getall"
	DeleteApplicationPath     = "/api/v1/application/delete/"
	LoginPath                 = "/api/v1/user/login"
	GetUserPath               = "/api/v1/user/getuser"
	LogoutPath                = "/api/v1/user/logout"

	// TokenCookie is the credential cookie the portal issues on login.
	TokenCookie = "token"
)

// ApplicationsPath returns the list endpoint serving a view.
func ApplicationsPath(view models.ViewKind) string {
	if view == models.EmployerView {
		return EmployerApplicationsPath
	}
	return JobSeekerApplicationsPath
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("portalrole", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	})
	return v
}

// LoginRequest is the body of POST /api/v1/user/login.
type LoginRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role" validate:"required,portalrole"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// LoginResponse is the body answered by a successful login.
type LoginResponse struct {
	User    *models.User `json:"user"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
}

// UserResponse is the body of GET /api/v1/user/getuser.
type UserResponse struct {
	User *models.User `json:"user"`
}

// ApplicationsResponse is the body of both application list endpoints.
type ApplicationsResponse struct {
	Applications []models.Application `json:"applications"`
}

// MessageResponse carries confirmations and error descriptions.
type MessageResponse struct {
	Message string `json:"message"`
}
